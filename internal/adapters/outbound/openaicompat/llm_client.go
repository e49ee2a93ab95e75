// Package openaicompat adapts the OpenAI Go SDK to the domain generation and embedding ports.
// Any OpenAI-compatible endpoint can be targeted through option.WithBaseURL.
package openaicompat

import (
	"context"
	"errors"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/telemetry"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"go.opentelemetry.io/otel/attribute"
)

// NewClient builds an OpenAI client from an API key plus extra request options.
func NewClient(apiKey string, opts ...option.RequestOption) openai.Client {
	return openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
}

// LLMClient adapts openai.Client to domain.LLMClient.
type LLMClient struct {
	client openai.Client
}

// NewLLMClient creates a new adapter.
func NewLLMClient(client openai.Client) LLMClient {
	return LLMClient{client: client}
}

// Chat implements domain.LLMClient.Chat.
func (c LLMClient) Chat(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	params, err := convRequest(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.LLMChatResponse{}, err
	}

	resp, err := c.client.Chat.Completions.New(spanCtx, params)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.LLMChatResponse{}, err
	}

	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMChatResponse{}, err
	}

	choice := resp.Choices[0]
	if choice.Message.Refusal != "" {
		err := fmt.Errorf("model refused the request: %s", choice.Message.Refusal)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMChatResponse{}, err
	}

	usage := domain.LLMUsage{
		PromptTokens:     int(resp.Usage.PromptTokens),
		CompletionTokens: int(resp.Usage.CompletionTokens),
		TotalTokens:      int(resp.Usage.TotalTokens),
	}
	span.SetAttributes(
		attribute.Int("llm.prompt_tokens", usage.PromptTokens),
		attribute.Int("llm.completion_tokens", usage.CompletionTokens),
		attribute.String("llm.finish_reason", choice.FinishReason),
	)

	return domain.LLMChatResponse{
		Content: choice.Message.Content,
		Usage:   usage,
	}, nil
}

func convRequest(req domain.LLMChatRequest) (openai.ChatCompletionNewParams, error) {
	if req.Model == "" {
		return openai.ChatCompletionNewParams{}, errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return openai.ChatCompletionNewParams{}, errors.New("messages are required")
	}

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch msg.Role {
		case domain.ChatRole_System:
			msgs = append(msgs, openai.SystemMessage(msg.Content))
		case domain.ChatRole_Assistant:
			msgs = append(msgs, openai.AssistantMessage(msg.Content))
		default:
			msgs = append(msgs, openai.UserMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: msgs,
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.TopP != nil {
		params.TopP = openai.Float(*req.TopP)
	}
	if req.MaxTokens != nil {
		params.MaxCompletionTokens = openai.Int(int64(*req.MaxTokens))
	}
	if req.ResponseSchema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        req.ResponseSchemaName,
					Description: param.NewOpt("structured care advice"),
					Schema:      req.ResponseSchema,
					Strict:      param.NewOpt(true),
				},
			},
		}
	}
	return params, nil
}
