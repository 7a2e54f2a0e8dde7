// Package openai implements the chat model contract over OpenAI-style
// chat completions with tool calling. Also works against compatible
// servers via a custom base URL.
package openai

import (
	"context"
	"encoding/json"
	"fmt"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"

	"github.com/destinai/destinai/agent"
	"github.com/destinai/destinai/log"
	"github.com/destinai/destinai/tools"
)

// Client drives an OpenAI chat model configured with the capability
// manifest as tool definitions.
type Client struct {
	client      oai.Client
	model       string
	instruction func() string
	tools       []oai.ChatCompletionToolParam
}

var _ agent.ChatModel = (*Client)(nil)

// NewClient creates an OpenAI chat model. baseURL may be empty for the
// default endpoint. The system instruction is re-evaluated per call so
// a long-running process never tells the model a stale date.
func NewClient(apiKey, baseURL, model string, manifest []tools.Capability, instruction func() string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Client{
		client:      oai.NewClient(opts...),
		model:       model,
		instruction: instruction,
		tools:       toolParams(manifest),
	}, nil
}

// Advance sends one message turn in the context of the prior history
// and returns the model's turn.
func (c *Client) Advance(ctx context.Context, history []agent.Turn, message agent.Turn) (agent.Turn, error) {
	messages := []oai.ChatCompletionMessageParamUnion{oai.SystemMessage(c.instruction())}
	for _, turn := range history {
		messages = append(messages, convertTurn(turn)...)
	}
	messages = append(messages, convertTurn(message)...)

	resp, err := c.client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model:    shared.ChatModel(c.model),
		Messages: messages,
		Tools:    c.tools,
	})
	if err != nil {
		return agent.Turn{}, fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return agent.Turn{}, fmt.Errorf("openai returned no choices")
	}

	return fromMessage(ctx, resp.Choices[0].Message), nil
}

func toolParams(manifest []tools.Capability) []oai.ChatCompletionToolParam {
	out := make([]oai.ChatCompletionToolParam, 0, len(manifest))
	for _, cap := range manifest {
		properties := make(map[string]interface{}, len(cap.Params))
		var required []string
		for _, p := range cap.Params {
			properties[p.Name] = map[string]interface{}{
				"type":        string(p.Type),
				"description": p.Description,
			}
			if p.Required {
				required = append(required, p.Name)
			}
		}
		out = append(out, oai.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        cap.Name,
				Description: param.NewOpt(cap.Description),
				Parameters: shared.FunctionParameters{
					"type":       "object",
					"properties": properties,
					"required":   required,
				},
			},
		})
	}
	return out
}

// convertTurn maps one conversation turn to OpenAI message params. A
// tool-result part becomes a tool-role message keyed by call ID.
func convertTurn(turn agent.Turn) []oai.ChatCompletionMessageParamUnion {
	if turn.Role == agent.RoleModel {
		asst := oai.ChatCompletionAssistantMessageParam{}
		if text := turn.Text(); text != "" {
			asst.Content.OfString = oai.String(text)
		}
		if call := turn.ToolCall(); call != nil {
			args, err := json.Marshal(call.Args)
			if err != nil {
				args = []byte("{}")
			}
			asst.ToolCalls = append(asst.ToolCalls, oai.ChatCompletionMessageToolCallParam{
				ID: callID(call.ID, call.Name),
				Function: oai.ChatCompletionMessageToolCallFunctionParam{
					Name:      call.Name,
					Arguments: string(args),
				},
			})
		}
		return []oai.ChatCompletionMessageParamUnion{{OfAssistant: &asst}}
	}

	var messages []oai.ChatCompletionMessageParamUnion
	for _, p := range turn.Parts {
		switch {
		case p.ToolResult != nil:
			messages = append(messages, oai.ToolMessage(p.ToolResult.Serialized(), callID(p.ToolResult.CallID, p.ToolResult.Name)))
		case p.Text != "":
			messages = append(messages, oai.UserMessage(p.Text))
		}
	}
	return messages
}

// fromMessage maps a completion message into a model turn. A turn
// carries at most one tool call, so only the first one is kept.
func fromMessage(ctx context.Context, msg oai.ChatCompletionMessage) agent.Turn {
	turn := agent.Turn{Role: agent.RoleModel}
	if msg.Content != "" {
		turn.Parts = append(turn.Parts, agent.Part{Text: msg.Content})
	}
	if len(msg.ToolCalls) > 0 {
		if len(msg.ToolCalls) > 1 {
			log.Warnf(ctx, "openai returned %d tool calls; keeping the first", len(msg.ToolCalls))
		}
		tc := msg.ToolCalls[0]
		args := map[string]interface{}{}
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			log.Warnf(ctx, "failed to parse tool call arguments: %v", err)
		}
		turn.Parts = append(turn.Parts, agent.Part{ToolCall: &agent.ToolCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: args,
		}})
	}
	return turn
}

// callID falls back to the capability name when the provider did not
// assign an ID, which keeps call/result pairing intact.
func callID(id, name string) string {
	if id != "" {
		return id
	}
	return name
}
