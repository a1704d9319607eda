package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/masalawok/orderbot/internal/actions"
)

// OpenAIClient implements Client against the OpenAI chat completions API
// with the action catalog advertised as callable functions.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

var _ Client = (*OpenAIClient)(nil)

// NewOpenAIClient builds a chat client for the given model.
func NewOpenAIClient(apiKey, model string, timeout time.Duration) *OpenAIClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAIClient{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

// Complete sends the whole conversation plus the function catalog and maps
// the first choice back to a Completion.
func (c *OpenAIClient) Complete(ctx context.Context, turns []Turn, specs []actions.Spec) (Completion, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
			Name:    turn.Name,
		})
	}

	functions := make([]openai.FunctionDefinition, 0, len(specs))
	for _, spec := range specs {
		functions = append(functions, openai.FunctionDefinition{
			Name:        spec.Name,
			Description: spec.Description,
			Parameters:  spec.Parameters,
		})
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:        c.model,
		Messages:     messages,
		Functions:    functions,
		FunctionCall: "auto",
	})
	if err != nil {
		return Completion{}, fmt.Errorf("conversation: chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Completion{}, errors.New("conversation: chat completion returned no choices")
	}

	message := resp.Choices[0].Message
	if message.FunctionCall != nil {
		return Completion{
			FunctionCall: &FunctionCall{
				Name:      message.FunctionCall.Name,
				Arguments: message.FunctionCall.Arguments,
			},
		}, nil
	}
	return Completion{Content: strings.TrimSpace(message.Content)}, nil
}
