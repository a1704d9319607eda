// Package actions is the catalog of restaurant operations the model may
// request, with schema validation in front of every dispatch.
package actions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/masalawok/orderbot/internal/menu"
	"github.com/masalawok/orderbot/internal/observability/metrics"
	"github.com/masalawok/orderbot/internal/store"
	"github.com/masalawok/orderbot/internal/timewindow"
	"github.com/masalawok/orderbot/pkg/logging"
)

var (
	// ErrUnknownAction is returned when the model requests an unregistered name.
	ErrUnknownAction = errors.New("actions: unknown action")

	// ErrInvalidArguments is returned when arguments fail schema validation.
	ErrInvalidArguments = errors.New("actions: invalid arguments")
)

// Handler executes one action. A returned string may be a confirmation or a
// business-rule refusal; both are relayed back into the conversation.
type Handler func(ctx context.Context, args map[string]any) (string, error)

type registration struct {
	spec    Spec
	schema  *gojsonschema.Schema
	handler Handler
}

// Registry maps action names to validated handlers. The set is fixed at
// construction; the model can only reach names registered here.
type Registry struct {
	store    store.Store
	catalog  *menu.Catalog
	window   *timewindow.Validator
	logger   *logging.Logger
	metrics  *metrics.ConversationMetrics
	ordered  []Spec
	registry map[string]registration
}

// NewRegistry builds the full action catalog against the given collaborators.
func NewRegistry(st store.Store, catalog *menu.Catalog, window *timewindow.Validator, logger *logging.Logger, m *metrics.ConversationMetrics) (*Registry, error) {
	if st == nil {
		panic("actions: store required")
	}
	if catalog == nil {
		panic("actions: menu catalog required")
	}
	if window == nil {
		panic("actions: time window validator required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	r := &Registry{
		store:    st,
		catalog:  catalog,
		window:   window,
		logger:   logger,
		metrics:  m,
		registry: make(map[string]registration),
	}

	handlers := map[string]Handler{
		"get_menu":           r.getMenu,
		"place_order":        r.placeOrder,
		"make_reservation":   r.makeReservation,
		"cancel_reservation": r.cancelReservation,
		"get_reservations":   r.getReservations,
		"get_all_orders":     r.getAllOrders,
		"get_hours":          r.getHours,
		"get_special_offers": r.getSpecialOffers,
		"get_location":       r.getLocation,
		"contact_human":      r.contactHuman,
	}

	for _, spec := range catalogSpecs() {
		handler, ok := handlers[spec.Name]
		if !ok {
			return nil, fmt.Errorf("actions: spec %s has no handler", spec.Name)
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(spec.Parameters))
		if err != nil {
			return nil, fmt.Errorf("actions: compile schema for %s: %w", spec.Name, err)
		}
		r.ordered = append(r.ordered, spec)
		r.registry[spec.Name] = registration{spec: spec, schema: schema, handler: handler}
	}
	return r, nil
}

// Specs returns the catalog in registration order.
func (r *Registry) Specs() []Spec {
	out := make([]Spec, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Dispatch validates the arguments against the action's schema and invokes
// its handler. The returned string may be a refusal; errors mean the call
// never reached the handler (or the store failed underneath it).
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) (string, error) {
	reg, ok := r.registry[name]
	if !ok {
		r.observe(name, "unknown_action")
		return "", fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	if args == nil {
		args = map[string]any{}
	}

	result, err := reg.schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		r.observe(name, "invalid_arguments")
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidArguments, name, err)
	}
	if !result.Valid() {
		r.observe(name, "invalid_arguments")
		var violations []string
		for _, desc := range result.Errors() {
			violations = append(violations, desc.String())
		}
		return "", fmt.Errorf("%w: %s: %s", ErrInvalidArguments, name, strings.Join(violations, "; "))
	}

	out, err := reg.handler(ctx, args)
	if err != nil {
		r.observe(name, "error")
		return "", err
	}
	r.observe(name, "ok")
	return out, nil
}

func (r *Registry) observe(action, outcome string) {
	r.metrics.ObserveDispatch(action, outcome)
}

func argString(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// argInt tolerates both float64 (decoded JSON) and int64 values.
func argInt(args map[string]any, key string) (int64, bool) {
	switch v := args[key].(type) {
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

func argStringSlice(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
