package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), DefaultConfig(), "")

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "API key")
}

func TestToGeminiType(t *testing.T) {
	tests := []struct {
		in   Type
		want genai.Type
	}{
		{TypeString, genai.TypeString},
		{TypeNumber, genai.TypeNumber},
		{TypeInteger, genai.TypeInteger},
		{TypeBoolean, genai.TypeBoolean},
		{TypeArray, genai.TypeArray},
		{TypeObject, genai.TypeObject},
		{Type("mystery"), genai.TypeUnspecified},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toGeminiType(tt.in), "type %q", tt.in)
	}
}

func TestToGeminiSchema_Nil(t *testing.T) {
	assert.Nil(t, toGeminiSchema(nil))
}

func TestToGeminiSchema_Nested(t *testing.T) {
	schema := &Schema{
		Type:        TypeObject,
		Description: "search parameters",
		Required:    []string{"travel_month"},
		Properties: map[string]*Schema{
			"travel_month": {
				Type:        TypeInteger,
				Description: "Month number 1-12",
			},
			"rain_tolerance": {
				Type: TypeString,
				Enum: []string{"low", "medium", "high"},
			},
			"environment_tags": {
				Type:  TypeArray,
				Items: &Schema{Type: TypeString},
			},
		},
	}

	out := toGeminiSchema(schema)

	require.NotNil(t, out)
	assert.Equal(t, genai.TypeObject, out.Type)
	assert.Equal(t, "search parameters", out.Description)
	assert.Equal(t, []string{"travel_month"}, out.Required)
	require.Len(t, out.Properties, 3)
	assert.Equal(t, genai.TypeInteger, out.Properties["travel_month"].Type)
	assert.Equal(t, []string{"low", "medium", "high"}, out.Properties["rain_tolerance"].Enum)
	require.NotNil(t, out.Properties["environment_tags"].Items)
	assert.Equal(t, genai.TypeString, out.Properties["environment_tags"].Items.Type)
}

func TestToGeminiDeclarations(t *testing.T) {
	tools := []Tool{
		{
			Name:        "search_destinations",
			Description: "Search the destination catalog",
			Parameters:  &Schema{Type: TypeObject},
		},
	}

	decls := toGeminiDeclarations(tools)

	require.Len(t, decls, 1)
	assert.Equal(t, "search_destinations", decls[0].Name)
	assert.Equal(t, "Search the destination catalog", decls[0].Description)
	require.NotNil(t, decls[0].Parameters)
	assert.Equal(t, genai.TypeObject, decls[0].Parameters.Type)
}

func responseWithParts(parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}

func TestExtractReply_TextOnly(t *testing.T) {
	resp := responseWithParts(genai.Text("Bangkok looks great "), genai.Text("in January."))

	reply, err := extractReply(resp)

	require.NoError(t, err)
	assert.Equal(t, "Bangkok looks great in January.", reply.Text)
	assert.Empty(t, reply.Calls)
}

func TestExtractReply_FunctionCall(t *testing.T) {
	resp := responseWithParts(genai.FunctionCall{
		Name: "search_destinations",
		Args: map[string]any{"travel_month": float64(1)},
	})

	reply, err := extractReply(resp)

	require.NoError(t, err)
	assert.Empty(t, reply.Text)
	require.Len(t, reply.Calls, 1)
	assert.Equal(t, "search_destinations", reply.Calls[0].Name)
	assert.Equal(t, float64(1), reply.Calls[0].Args["travel_month"])
}

func TestExtractReply_MixedParts(t *testing.T) {
	resp := responseWithParts(
		genai.Text("Let me check the catalog."),
		genai.FunctionCall{Name: "search_destinations", Args: map[string]any{}},
	)

	reply, err := extractReply(resp)

	require.NoError(t, err)
	assert.Equal(t, "Let me check the catalog.", reply.Text)
	require.Len(t, reply.Calls, 1)
}

func TestExtractReply_NoCandidates(t *testing.T) {
	_, err := extractReply(&genai.GenerateContentResponse{})
	require.Error(t, err)

	_, err = extractReply(nil)
	require.Error(t, err)
}

func TestExtractReply_EmptyContent(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}

	_, err := extractReply(resp)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
