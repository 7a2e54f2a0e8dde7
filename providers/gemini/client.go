// Package gemini implements the chat model contract over the Gemini
// API with function calling.
package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/destinai/destinai/agent"
	"github.com/destinai/destinai/log"
	"github.com/destinai/destinai/tools"
)

// Client drives one Gemini model configured with the capability
// manifest as function declarations.
type Client struct {
	client      *genai.Client
	modelName   string
	tools       []*genai.Tool
	instruction func() string
}

// Ensure Client satisfies the chat model contract
var _ agent.ChatModel = (*Client)(nil)

// NewClient creates a Gemini chat model. The manifest is fixed at
// creation time; the system instruction is re-evaluated per call so a
// long-running process never tells the model a stale date.
func NewClient(ctx context.Context, apiKey, modelName string, manifest []tools.Capability, instruction func() string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client:      client,
		modelName:   modelName,
		tools:       []*genai.Tool{{FunctionDeclarations: declarations(manifest)}},
		instruction: instruction,
	}, nil
}

// Advance sends one message turn in the context of the prior history
// and returns the model's turn.
func (c *Client) Advance(ctx context.Context, history []agent.Turn, message agent.Turn) (agent.Turn, error) {
	model := c.client.GenerativeModel(c.modelName)
	model.Tools = c.tools
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(c.instruction())}}

	session := model.StartChat()
	session.History = toContents(history)

	resp, err := session.SendMessage(ctx, toParts(message)...)
	if err != nil {
		return agent.Turn{}, fmt.Errorf("gemini generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return agent.Turn{}, fmt.Errorf("gemini returned no candidates")
	}

	turn := fromContent(ctx, resp.Candidates[0].Content)
	return turn, nil
}

// Close releases the underlying client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// declarations converts the capability manifest into Gemini function
// declarations.
func declarations(manifest []tools.Capability) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(manifest))
	for _, cap := range manifest {
		schema := &genai.Schema{
			Type:       genai.TypeObject,
			Properties: make(map[string]*genai.Schema, len(cap.Params)),
		}
		for _, p := range cap.Params {
			schema.Properties[p.Name] = &genai.Schema{
				Type:        schemaType(p.Type),
				Description: p.Description,
			}
			if p.Required {
				schema.Required = append(schema.Required, p.Name)
			}
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        cap.Name,
			Description: cap.Description,
			Parameters:  schema,
		})
	}
	return decls
}

func schemaType(t tools.ParamType) genai.Type {
	switch t {
	case tools.TypeInteger:
		return genai.TypeInteger
	case tools.TypeNumber:
		return genai.TypeNumber
	default:
		return genai.TypeString
	}
}

func toContents(history []agent.Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := "user"
		if turn.Role == agent.RoleModel {
			role = "model"
		}
		contents = append(contents, &genai.Content{Role: role, Parts: toParts(turn)})
	}
	return contents
}

func toParts(turn agent.Turn) []genai.Part {
	parts := make([]genai.Part, 0, len(turn.Parts))
	for _, p := range turn.Parts {
		switch {
		case p.ToolCall != nil:
			parts = append(parts, genai.FunctionCall{
				Name: p.ToolCall.Name,
				Args: p.ToolCall.Args,
			})
		case p.ToolResult != nil:
			parts = append(parts, genai.FunctionResponse{
				Name:     p.ToolResult.Name,
				Response: p.ToolResult.ResponseMap(),
			})
		case p.Text != "":
			parts = append(parts, genai.Text(p.Text))
		}
	}
	return parts
}

// fromContent maps a Gemini candidate into a model turn. A turn carries
// at most one tool call, so only the first function call is kept.
func fromContent(ctx context.Context, content *genai.Content) agent.Turn {
	turn := agent.Turn{Role: agent.RoleModel}
	for _, part := range content.Parts {
		switch p := part.(type) {
		case genai.Text:
			if p != "" {
				turn.Parts = append(turn.Parts, agent.Part{Text: string(p)})
			}
		case genai.FunctionCall:
			if turn.ToolCall() != nil {
				log.Warnf(ctx, "gemini returned multiple function calls; keeping the first")
				continue
			}
			turn.Parts = append(turn.Parts, agent.Part{ToolCall: &agent.ToolCall{
				Name: p.Name,
				Args: p.Args,
			}})
		}
	}
	return turn
}
