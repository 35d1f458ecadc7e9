// Package agent implements the tool-calling conversation loop that connects
// an LLM chat session to the destination ranking engine.
package agent

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/season-radar/internal/catalog"
	"github.com/jonathan/season-radar/internal/llm"
)

// maxIterations caps the number of model calls in one agentic turn so a
// misbehaving model cannot loop on tool calls forever.
const maxIterations = 6

const iterationLimitReply = "[Season Radar hit an iteration limit. Please try again.]"

// Agent drives a multi-turn conversation, executing tool calls between model
// replies. Conversation history lives in the underlying session, so an Agent
// is not safe for concurrent use.
type Agent struct {
	session llm.Session
	toolbox *Toolbox
}

// New creates an agent with a fresh chat session over the given catalog.
func New(client llm.Client, cat *catalog.Catalog) *Agent {
	toolbox := NewToolbox(cat)
	session := client.NewSession(llm.SessionOptions{
		System: SystemPrompt(cat.Len(), toolbox.now()),
		Tools:  toolbox.Tools(),
	})
	return &Agent{session: session, toolbox: toolbox}
}

// RunTurn drives one full agentic turn:
//  1. Send the user message (the model may respond with tool calls)
//  2. Execute any tools and feed results back
//  3. Repeat until the model answers with text only
//
// Returns the final text response.
func (a *Agent) RunTurn(ctx context.Context, message string) (string, error) {
	reply, err := a.session.Send(ctx, message)
	if err != nil {
		return "", err
	}

	// The opening Send consumed the first iteration.
	for i := 1; i < maxIterations; i++ {
		if len(reply.Calls) == 0 {
			return reply.Text, nil
		}

		reply, err = a.session.SendToolResults(ctx, a.dispatchAll(reply.Calls)...)
		if err != nil {
			return "", err
		}
	}

	if len(reply.Calls) == 0 {
		return reply.Text, nil
	}
	return iterationLimitReply, nil
}

// dispatchAll executes the reply's tool calls and returns their results in
// call order. Parallel calls from one reply are independent searches, so
// they run concurrently; each goroutine owns its own result slot.
func (a *Agent) dispatchAll(calls []llm.ToolCall) []llm.ToolResult {
	results := make([]llm.ToolResult, len(calls))
	if len(calls) == 1 {
		results[0] = a.toolbox.Dispatch(calls[0])
		return results
	}

	var g errgroup.Group
	for i, call := range calls {
		g.Go(func() error {
			results[i] = a.toolbox.Dispatch(call)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
