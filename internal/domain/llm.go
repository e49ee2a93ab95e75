package domain

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
)

// ChatRole represents the role of a chat message
type ChatRole string

const (
	ChatRole_System    ChatRole = "system"
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
)

// LLMChatMessage represents a message in a chat request to the LLM API
type LLMChatMessage struct {
	Role    ChatRole
	Content string
}

// LLMChatRequest represents a request to the LLM API
type LLMChatRequest struct {
	Model    string
	Messages []LLMChatMessage
	// Optional parameters
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
	// ResponseSchema asks backends that support structured output to constrain
	// the reply to this JSON schema. Backends without support ignore it.
	ResponseSchema     *jsonschema.Schema
	ResponseSchemaName string
}

// LLMUsage contains token usage information
type LLMUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// LLMChatResponse represents the response from a chat request to the LLM API
type LLMChatResponse struct {
	Content string
	Usage   LLMUsage
}

// LLMClient defines the interface for interacting with a generative model.
// The returned content is untrusted: it may be empty, malformed or off-schema.
type LLMClient interface {
	// Chat sends a chat request to the LLM and returns the full assistant response.
	Chat(ctx context.Context, req LLMChatRequest) (LLMChatResponse, error)
}
