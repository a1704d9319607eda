package session

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/masalawok/orderbot/pkg/logging"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	m, _ := newTestManager(t)
	h := NewHandler(m, logging.Default())

	r := chi.NewRouter()
	r.Post("/sessions", h.Start)
	r.Post("/sessions/{sessionID}/messages", h.Message)
	r.Delete("/sessions/{sessionID}", h.End)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func decodeSnapshot(t *testing.T, resp *http.Response) Snapshot {
	t.Helper()
	defer resp.Body.Close()
	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	return snap
}

func TestStartEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /sessions: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	snap := decodeSnapshot(t, resp)
	if snap.SessionID == "" || len(snap.Transcript) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestMessageEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /sessions: %v", err)
	}
	started := decodeSnapshot(t, resp)

	body, _ := json.Marshal(MessageRequest{Message: "hello"})
	resp, err = http.Post(srv.URL+"/sessions/"+started.SessionID+"/messages", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST message: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	snap := decodeSnapshot(t, resp)
	if snap.Reply == "" || len(snap.Transcript) != 3 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestMessageEndpointRejectsEmptyBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /sessions: %v", err)
	}
	started := decodeSnapshot(t, resp)

	body, _ := json.Marshal(MessageRequest{Message: "   "})
	resp, err = http.Post(srv.URL+"/sessions/"+started.SessionID+"/messages", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST message: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestMessageEndpointUnknownSession(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(MessageRequest{Message: "hello"})
	resp, err := http.Post(srv.URL+"/sessions/unknown/messages", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST message: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestEndEndpointResets(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /sessions: %v", err)
	}
	started := decodeSnapshot(t, resp)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/sessions/"+started.SessionID, nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE session: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	snap := decodeSnapshot(t, resp)
	if len(snap.Transcript) != 1 {
		t.Fatalf("expected fresh transcript, got %v", snap.Transcript)
	}
}
