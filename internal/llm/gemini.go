package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements the Client interface for Google's Gemini API.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client with the given configuration
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// NewSession starts a chat session with the configured model, wiring in the
// system instruction and tool declarations.
func (c *GeminiClient) NewSession(opts SessionOptions) Session {
	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(c.config.Temperature)
	if c.config.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(c.config.MaxOutputTokens)
	}

	if opts.System != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(opts.System)},
		}
	}

	if len(opts.Tools) > 0 {
		model.Tools = []*genai.Tool{
			{FunctionDeclarations: toGeminiDeclarations(opts.Tools)},
		}
	}

	return &geminiSession{chat: model.StartChat()}
}

// Close releases the underlying API client
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

type geminiSession struct {
	chat *genai.ChatSession
}

// Send delivers a user message and returns the model's reply.
func (s *geminiSession) Send(ctx context.Context, message string) (*Reply, error) {
	resp, err := s.chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return extractReply(resp)
}

// SendToolResults feeds tool outputs back to the model as function responses.
func (s *geminiSession) SendToolResults(ctx context.Context, results ...ToolResult) (*Reply, error) {
	parts := make([]genai.Part, 0, len(results))
	for _, result := range results {
		parts = append(parts, genai.FunctionResponse{
			Name:     result.Name,
			Response: map[string]any{"content": result.Content},
		})
	}

	resp, err := s.chat.SendMessage(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to send tool results: %w", err)
	}
	return extractReply(resp)
}

// toGeminiDeclarations converts provider-neutral tool definitions into the
// genai function declaration format.
func toGeminiDeclarations(tools []Tool) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, tool := range tools {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  toGeminiSchema(tool.Parameters),
		})
	}
	return decls
}

func toGeminiSchema(schema *Schema) *genai.Schema {
	if schema == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        toGeminiType(schema.Type),
		Description: schema.Description,
		Enum:        schema.Enum,
		Required:    schema.Required,
	}
	if schema.Items != nil {
		out.Items = toGeminiSchema(schema.Items)
	}
	if len(schema.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(schema.Properties))
		for name, prop := range schema.Properties {
			out.Properties[name] = toGeminiSchema(prop)
		}
	}
	return out
}

func toGeminiType(t Type) genai.Type {
	switch t {
	case TypeString:
		return genai.TypeString
	case TypeNumber:
		return genai.TypeNumber
	case TypeInteger:
		return genai.TypeInteger
	case TypeBoolean:
		return genai.TypeBoolean
	case TypeArray:
		return genai.TypeArray
	case TypeObject:
		return genai.TypeObject
	default:
		return genai.TypeUnspecified
	}
}

// extractReply pulls text and function calls out of a model response.
func extractReply(resp *genai.GenerateContentResponse) (*Reply, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no response candidates returned")
	}

	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return nil, fmt.Errorf("empty response content")
	}

	reply := &Reply{}
	for _, part := range content.Parts {
		switch p := part.(type) {
		case genai.Text:
			reply.Text += string(p)
		case genai.FunctionCall:
			reply.Calls = append(reply.Calls, ToolCall{Name: p.Name, Args: p.Args})
		}
	}

	if reply.Text == "" && len(reply.Calls) == 0 {
		return nil, fmt.Errorf("response contained no usable parts")
	}
	return reply, nil
}
