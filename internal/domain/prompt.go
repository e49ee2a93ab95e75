package domain

import (
	"fmt"
	"strings"
)

// PromptRequest is the assembled instruction payload for one advice request.
// It is immutable once assembled and discarded after the generation call.
type PromptRequest struct {
	Symptoms  string
	Emotion   string
	Sentiment SentimentResult
	Topic     string
	Facts     []string
	Messages  []LLMChatMessage
}

// Render flattens the prompt messages into a single text, for backends that take one string.
func (p PromptRequest) Render() string {
	var sb strings.Builder
	for i, msg := range p.Messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "[%s]\n%s", msg.Role, msg.Content)
	}
	return sb.String()
}
