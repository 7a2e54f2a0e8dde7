package agent

import (
	"context"
	"fmt"

	"github.com/destinai/destinai/log"
)

// Orchestrator runs one conversation step per user message: at most one
// model turn, one tool dispatch, and one follow-up model turn. It holds
// no per-session state; the caller threads the history through.
type Orchestrator struct {
	model      ChatModel
	dispatcher ToolDispatcher
}

// NewOrchestrator creates an Orchestrator over a chat model and a tool
// dispatcher.
func NewOrchestrator(model ChatModel, dispatcher ToolDispatcher) *Orchestrator {
	return &Orchestrator{model: model, dispatcher: dispatcher}
}

// HandleMessage advances the conversation with one user message and
// returns the final reply text plus the updated history. It never
// returns an error: a failing model call becomes a user-visible error
// reply, and tool failures are fed back to the model as results.
func (o *Orchestrator) HandleMessage(ctx context.Context, history []Turn, userText string) (string, []Turn) {
	userTurn := TextTurn(RoleUser, userText)

	modelTurn, err := o.model.Advance(ctx, history, userTurn)
	history = append(history, userTurn)
	if err != nil {
		log.Errorf(ctx, "model call failed: %v", err)
		return errorReply(err), history
	}
	history = append(history, modelTurn)

	call := modelTurn.ToolCall()
	if call == nil {
		reply := modelTurn.Text()
		if reply == "" {
			log.Warnf(ctx, "model turn carried neither text nor a tool call")
		}
		return reply, history
	}

	log.Infof(ctx, "model requested capability %q", call.Name)
	result := o.dispatcher.Dispatch(ctx, *call)
	if !result.OK {
		log.Warnf(ctx, "capability %q failed: %s", call.Name, result.Error)
	}

	resultTurn := ToolResultTurn(result)
	finalTurn, err := o.model.Advance(ctx, history, resultTurn)
	history = append(history, resultTurn)
	if err != nil {
		log.Errorf(ctx, "model call after tool result failed: %v", err)
		return errorReply(err), history
	}
	history = append(history, finalTurn)

	// One tool call per message. A second call here is a protocol
	// violation; surface whatever text the turn has instead of looping.
	if finalTurn.ToolCall() != nil {
		log.Warnf(ctx, "model issued a second tool call (%q); surfacing raw text", finalTurn.ToolCall().Name)
	}
	return finalTurn.Text(), history
}

func errorReply(err error) string {
	return fmt.Sprintf("Sorry, something went wrong while planning your trip: %v. Please try again.", err)
}
