package llm

import (
	"context"
)

// Client is an abstraction over LLM providers with tool-calling support.
type Client interface {
	// NewSession starts a stateful chat session with the given options.
	NewSession(opts SessionOptions) Session
	// Close releases any resources held by the client
	Close() error
}

// SessionOptions configures a chat session.
type SessionOptions struct {
	// System is the system instruction prepended to the conversation.
	System string
	// Tools are the function declarations the model may call.
	Tools []Tool
}

// Session is one stateful conversation with the model. Sessions are not
// safe for concurrent use; callers serialize turns.
type Session interface {
	// Send delivers a user message and returns the model's reply.
	Send(ctx context.Context, message string) (*Reply, error)
	// SendToolResults feeds tool outputs back to the model and returns its
	// next reply.
	SendToolResults(ctx context.Context, results ...ToolResult) (*Reply, error)
}

// Reply is a single model turn: text, tool calls, or both.
type Reply struct {
	Text  string
	Calls []ToolCall
}

// ToolCall is the model's request to invoke one declared tool.
type ToolCall struct {
	Name string
	Args map[string]any
}

// ToolResult carries one tool invocation's output back to the model.
type ToolResult struct {
	Name    string
	Content string
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	// case ProviderOpenAI:
	//     return NewOpenAIClient(ctx, config, apiKey)
	// case ProviderAnthropic:
	//     return NewClaudeClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}
