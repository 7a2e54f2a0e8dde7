package agent

import "context"

// ChatModel is the conversational model contract. Implementations are
// constructed with the capability manifest and, given the running
// history plus one new message turn, return a single model turn that is
// either plain text or contains one tool call. Argument completeness is
// not guaranteed; defaulting and validation belong to the dispatcher.
type ChatModel interface {
	Advance(ctx context.Context, history []Turn, message Turn) (Turn, error)
}

// ToolDispatcher executes one capability invocation. It never returns
// an error: every failure mode is folded into the ToolResult.
type ToolDispatcher interface {
	Dispatch(ctx context.Context, call ToolCall) ToolResult
}
