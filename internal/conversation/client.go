package conversation

import (
	"context"

	"github.com/masalawok/orderbot/internal/actions"
)

// FunctionCall is the model's request to invoke one action. Arguments is the
// raw JSON the model produced; it is decoded and validated before dispatch.
type FunctionCall struct {
	Name      string
	Arguments string
}

// Completion is one chat model response. Exactly one of Content or
// FunctionCall is meaningful.
type Completion struct {
	Content      string
	FunctionCall *FunctionCall
}

// Client is the chat completion boundary. The full turn sequence and action
// catalog are sent on every call.
type Client interface {
	Complete(ctx context.Context, turns []Turn, specs []actions.Spec) (Completion, error)
}
