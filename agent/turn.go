// Package agent contains the conversation types and the orchestration
// loop that drives one user message through the chat model and, when the
// model asks for one, a single capability invocation.
package agent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Turn roles. The chat model only ever produces model turns; user text
// and tool results both enter the history as user turns.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ToolCall is a capability invocation requested by the chat model.
type ToolCall struct {
	// ID is the provider-assigned call identifier, when the provider
	// uses one (OpenAI does, Gemini does not).
	ID   string                 `json:"id,omitempty"`
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args,omitempty"`
}

// ToolResult is the outcome of a capability invocation. It is always
// produced, success or failure, so the conversation loop always has
// something to hand back to the model.
type ToolResult struct {
	Name    string      `json:"name"`
	CallID  string      `json:"call_id,omitempty"`
	OK      bool        `json:"ok"`
	Payload interface{} `json:"payload,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ResponseMap shapes the result for providers that send structured
// function responses back to the model.
func (r ToolResult) ResponseMap() map[string]interface{} {
	if !r.OK {
		return map[string]interface{}{"ok": false, "error": r.Error}
	}
	return map[string]interface{}{"ok": true, "result": r.Payload}
}

// Serialized renders the result as the text-equivalent message fed back
// into the conversation.
func (r ToolResult) Serialized() string {
	b, err := json.MarshalIndent(r.ResponseMap(), "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", r.ResponseMap())
	}
	return string(b)
}

// Part is a single piece of a turn: plain text, a tool call, or a tool
// result. Exactly one field is set.
type Part struct {
	Text       string      `json:"text,omitempty"`
	ToolCall   *ToolCall   `json:"tool_call,omitempty"`
	ToolResult *ToolResult `json:"tool_result,omitempty"`
}

// Turn is one entry in the conversation history. A turn carries at most
// one tool-call part.
type Turn struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// TextTurn builds a single-part text turn.
func TextTurn(role, text string) Turn {
	return Turn{Role: role, Parts: []Part{{Text: text}}}
}

// ToolResultTurn wraps a tool result as the user-role turn fed back to
// the model after dispatch.
func ToolResultTurn(result ToolResult) Turn {
	return Turn{Role: RoleUser, Parts: []Part{{ToolResult: &result}}}
}

// ToolCall returns the turn's tool-call part, or nil if the turn is
// plain text.
func (t Turn) ToolCall() *ToolCall {
	for _, p := range t.Parts {
		if p.ToolCall != nil {
			return p.ToolCall
		}
	}
	return nil
}

// Text concatenates the turn's text parts.
func (t Turn) Text() string {
	var sb strings.Builder
	for _, p := range t.Parts {
		if p.Text != "" {
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}
