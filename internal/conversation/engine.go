// Package conversation runs the function-dispatch loop between the customer,
// the chat model, and the action registry.
package conversation

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/masalawok/orderbot/internal/actions"
	"github.com/masalawok/orderbot/internal/observability/metrics"
	"github.com/masalawok/orderbot/pkg/logging"
)

const systemPrompt = `You are the Masala Wok order bot. You are a helpful assistant and will help the customer
- Look at the restaurant's menu
- Place an order for delivery
- Make a dine-in reservation
- Cancel existing delivery order or dine-in reservation
- Get the restaurant's operating hours
- Get special offers
- Get the location of the restaurant

For each request, you need to ask the user for all the required information.

Don't make assumptions about what values to plug into functions. Ask for clarification if a user request is ambiguous.

Start with a short welcome message and encourage the user to share their requirements.`

// steeringReminder is appended to every raw user message before it reaches
// the model, keeping replies on restaurant topics.
const steeringReminder = " Remember your system message and that you are an intelligent restaurant bot. So, you only help with questions around the offering of this restaurant."

const (
	farewellMessage = "Goodbye! We hope to see you again soon."
	apologyMessage  = "Sorry, something went wrong on my end. Could you try that again?"
	defaultGreeting = "Welcome to Masala Wok! How can I help you today?"
)

var exitPhrases = map[string]struct{}{
	"exit": {},
	"bye":  {},
	"quit": {},
}

// Engine owns the per-message protocol: append the user turn, call the
// model, dispatch at most one function call, and produce the reply turn.
type Engine struct {
	client   Client
	registry *actions.Registry
	logger   *logging.Logger
	metrics  *metrics.ConversationMetrics
}

// NewEngine wires the chat client and action registry together.
func NewEngine(client Client, registry *actions.Registry, logger *logging.Logger, m *metrics.ConversationMetrics) *Engine {
	if client == nil {
		panic("conversation: client required")
	}
	if registry == nil {
		panic("conversation: registry required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Engine{
		client:   client,
		registry: registry,
		logger:   logger,
		metrics:  m,
	}
}

// Start seeds a fresh conversation with the system prompt and asks the model
// for the opening greeting. A transport failure degrades to a scripted
// greeting so the session is still usable.
func (e *Engine) Start(ctx context.Context) (Conversation, Turn, error) {
	conv := Conversation{{Role: RoleSystem, Content: systemPrompt}}

	completion, err := e.complete(ctx, conv)
	greeting := defaultGreeting
	if err != nil {
		e.logger.Error("greeting model call failed", "error", err)
	} else if completion.Content != "" {
		greeting = completion.Content
	}

	turn := Turn{Role: RoleAssistant, Content: greeting}
	return conv.Append(turn), turn, nil
}

// HandleMessage runs one exchange: exactly one user message in, one reply
// turn out, with at most one function call resolved in between. All model
// and dispatch failures are recovered into an apology turn; the conversation
// stays usable for the next message.
func (e *Engine) HandleMessage(ctx context.Context, conv Conversation, text string) (Conversation, Turn, error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveTurnLatency(time.Since(started).Seconds())
	}()

	trimmed := strings.TrimSpace(text)
	conv = conv.Append(Turn{Role: RoleUser, Content: trimmed + steeringReminder})

	if _, ok := exitPhrases[strings.ToLower(trimmed)]; ok {
		turn := Turn{Role: RoleAssistant, Content: farewellMessage}
		return conv.Append(turn), turn, nil
	}

	completion, err := e.complete(ctx, conv)
	if err != nil {
		e.logger.Error("model call failed", "error", err)
		return e.apologize(conv)
	}

	if completion.FunctionCall == nil {
		turn := Turn{Role: RoleAssistant, Content: completion.Content}
		return conv.Append(turn), turn, nil
	}

	call := completion.FunctionCall
	var args map[string]any
	if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
		e.logger.Error("malformed function arguments", "action", call.Name, "error", err)
		return e.apologize(conv)
	}

	result, err := e.registry.Dispatch(ctx, call.Name, args)
	if err != nil {
		e.logger.Error("action dispatch failed", "action", call.Name, "error", err)
		return e.apologize(conv)
	}

	serialized, err := json.Marshal(result)
	if err != nil {
		return e.apologize(conv)
	}
	conv = conv.Append(Turn{Role: RoleFunction, Name: call.Name, Content: string(serialized)})

	completion, err = e.complete(ctx, conv)
	if err != nil {
		e.logger.Error("follow-up model call failed", "action", call.Name, "error", err)
		return e.apologize(conv)
	}

	turn := Turn{Role: RoleAssistant, Content: completion.Content}
	return conv.Append(turn), turn, nil
}

// Reset discards the conversation and starts over.
func (e *Engine) Reset(ctx context.Context) (Conversation, Turn, error) {
	return e.Start(ctx)
}

func (e *Engine) complete(ctx context.Context, conv Conversation) (Completion, error) {
	completion, err := e.client.Complete(ctx, conv, e.registry.Specs())
	if err != nil {
		e.metrics.ObserveModelCall("error")
		return Completion{}, err
	}
	e.metrics.ObserveModelCall("ok")
	return completion, nil
}

func (e *Engine) apologize(conv Conversation) (Conversation, Turn, error) {
	turn := Turn{Role: RoleAssistant, Content: apologyMessage}
	return conv.Append(turn), turn, nil
}
