package modelrunner

import (
	"context"
	"errors"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// LLMClient adapts DRMAPIClient to domain.LLMClient interface
type LLMClient struct {
	client DRMAPIClient
}

// NewLLMClientAdapter creates a new adapter
func NewLLMClientAdapter(client DRMAPIClient) LLMClient {
	return LLMClient{client: client}
}

// Chat implements domain.LLMClient.Chat
func (a LLMClient) Chat(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	adapterReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}
	for i, msg := range req.Messages {
		adapterReq.Messages[i] = ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}
	if req.ResponseSchema != nil {
		adapterReq.ResponseFormat = &ResponseFormat{
			Type: "json_schema",
			JSONSchema: &ResponseJSONSchema{
				Name:   req.ResponseSchemaName,
				Strict: true,
				Schema: req.ResponseSchema,
			},
		}
	}

	resp, err := a.client.Chat(spanCtx, adapterReq)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.LLMChatResponse{}, err
	}

	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMChatResponse{}, err
	}

	usage := usageFrom(resp)
	span.SetAttributes(
		attribute.Int("llm.prompt_tokens", usage.PromptTokens),
		attribute.Int("llm.completion_tokens", usage.CompletionTokens),
		attribute.String("llm.finish_reason", resp.Choices[0].FinishReason),
	)

	return domain.LLMChatResponse{
		Content: resp.Choices[0].Message.Content,
		Usage:   usage,
	}, nil
}

// usageFrom reads the token usage, falling back to llama.cpp timings.
func usageFrom(resp *ChatResponse) domain.LLMUsage {
	switch {
	case resp.Usage != nil:
		return domain.LLMUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	case resp.Timings != nil:
		return domain.LLMUsage{
			PromptTokens:     resp.Timings.PromptN,
			CompletionTokens: resp.Timings.PredictedN,
			TotalTokens:      resp.Timings.PromptN + resp.Timings.PredictedN,
		}
	default:
		return domain.LLMUsage{}
	}
}
