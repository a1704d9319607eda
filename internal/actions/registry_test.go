package actions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/masalawok/orderbot/internal/menu"
	"github.com/masalawok/orderbot/internal/store"
	"github.com/masalawok/orderbot/internal/timewindow"
	"github.com/masalawok/orderbot/pkg/logging"
)

const testMenuCSV = `Section,Item
Appetizers,Vegetable Samosa
Entrees,Pad Thai
Entrees,Chicken Tikka Masala
Desserts,Gulab Jamun
`

func newTestRegistry(t *testing.T) (*Registry, *store.InMemoryStore) {
	t.Helper()
	st := store.NewInMemoryStore()
	catalog, err := menu.Parse(strings.NewReader(testMenuCSV))
	if err != nil {
		t.Fatalf("parse menu: %v", err)
	}
	window, err := timewindow.New("America/Chicago")
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	reg, err := NewRegistry(st, catalog, window, logging.Default(), nil)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	return reg, st
}

func TestDispatchUnknownAction(t *testing.T) {
	reg, _ := newTestRegistry(t)
	_, err := reg.Dispatch(context.Background(), "fire_the_chef", nil)
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestDispatchRejectsMissingRequiredParams(t *testing.T) {
	reg, st := newTestRegistry(t)
	_, err := reg.Dispatch(context.Background(), "place_order", map[string]any{
		"item": "Pad Thai",
	})
	if !errors.Is(err, ErrInvalidArguments) {
		t.Fatalf("expected ErrInvalidArguments, got %v", err)
	}
	if all, _ := st.ListAll(context.Background()); len(all) != 0 {
		t.Fatalf("store must stay untouched on validation failure, got %v", all)
	}
}

func TestDispatchRejectsEnumViolation(t *testing.T) {
	reg, _ := newTestRegistry(t)
	_, err := reg.Dispatch(context.Background(), "place_order", map[string]any{
		"item":          "Pad Thai",
		"order_type":    "pickup",
		"name":          "Jane",
		"phone_number":  "555-1234",
		"email_address": "jane@x.com",
	})
	if !errors.Is(err, ErrInvalidArguments) {
		t.Fatalf("expected ErrInvalidArguments for enum violation, got %v", err)
	}
}

func TestDispatchRejectsWrongType(t *testing.T) {
	reg, _ := newTestRegistry(t)
	_, err := reg.Dispatch(context.Background(), "make_reservation", map[string]any{
		"reservation_date": "2026-09-01",
		"name":             "Jane",
		"phone_number":     "555-1234",
		"email_address":    "jane@x.com",
		"guests":           "two",
		"reservation_type": "dine-in",
	})
	if !errors.Is(err, ErrInvalidArguments) {
		t.Fatalf("expected ErrInvalidArguments for string guests, got %v", err)
	}
}

func TestSpecsCoverEveryRegisteredAction(t *testing.T) {
	reg, _ := newTestRegistry(t)
	specs := reg.Specs()
	if len(specs) != 10 {
		t.Fatalf("expected 10 actions, got %d", len(specs))
	}
	for _, spec := range specs {
		if spec.Name == "" || spec.Description == "" || spec.Parameters == nil {
			t.Errorf("incomplete spec: %+v", spec)
		}
	}
}

func TestDispatchStatelessActions(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()
	for name, want := range map[string]string{
		"get_hours":          "We are open from 10 AM to 10 PM every day.",
		"get_special_offers": "We have a 20% discount on all desserts this week!",
		"get_location":       "We are located at 123 Main Street, Anytown.",
		"contact_human":      "You can reach us at (123) 456-7890 or email us at contact@restaurant.com.",
	} {
		got, err := reg.Dispatch(ctx, name, nil)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
}

func TestDispatchGetMenuListsAllSections(t *testing.T) {
	reg, _ := newTestRegistry(t)
	got, err := reg.Dispatch(context.Background(), "get_menu", nil)
	if err != nil {
		t.Fatalf("get_menu: %v", err)
	}
	for _, fragment := range []string{"Appetizers", "Pad Thai", "Gulab Jamun"} {
		if !strings.Contains(got, fragment) {
			t.Errorf("menu output missing %q: %s", fragment, got)
		}
	}
}
