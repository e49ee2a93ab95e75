// Package gemini adapts the Google Gen AI SDK to the domain generation and embedding ports.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/telemetry"
	"github.com/google/jsonschema-go/jsonschema"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"
)

// LLMClient adapts a genai.Client to domain.LLMClient.
type LLMClient struct {
	client *genai.Client
}

// NewLLMClient creates a new adapter.
func NewLLMClient(client *genai.Client) LLMClient {
	return LLMClient{client: client}
}

// Chat implements domain.LLMClient.Chat.
func (c LLMClient) Chat(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if req.Model == "" {
		err := errors.New("model is required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMChatResponse{}, err
	}

	cfg, contents := convRequest(req)
	if len(contents) == 0 {
		err := errors.New("messages are required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMChatResponse{}, err
	}

	resp, err := c.client.Models.GenerateContent(spanCtx, req.Model, contents, cfg)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.LLMChatResponse{}, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		err := errors.New("no candidates in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMChatResponse{}, err
	}

	candidate := resp.Candidates[0]
	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}

	usage := convUsage(resp.UsageMetadata)
	span.SetAttributes(
		attribute.Int("llm.prompt_tokens", usage.PromptTokens),
		attribute.Int("llm.completion_tokens", usage.CompletionTokens),
		attribute.String("llm.finish_reason", string(candidate.FinishReason)),
	)

	return domain.LLMChatResponse{
		Content: sb.String(),
		Usage:   usage,
	}, nil
}

// convRequest moves system messages into the system instruction and maps the
// remaining turns to user and model contents.
func convRequest(req domain.LLMChatRequest) (*genai.GenerateContentConfig, []*genai.Content) {
	cfg := &genai.GenerateContentConfig{}
	if req.Temperature != nil {
		cfg.Temperature = genai.Ptr(float32(*req.Temperature))
	}
	if req.TopP != nil {
		cfg.TopP = genai.Ptr(float32(*req.TopP))
	}
	if req.MaxTokens != nil {
		cfg.MaxOutputTokens = int32(*req.MaxTokens)
	}
	if req.ResponseSchema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = convSchema(req.ResponseSchema)
	}

	var (
		system   []*genai.Part
		contents []*genai.Content
	)
	for _, msg := range req.Messages {
		switch msg.Role {
		case domain.ChatRole_System:
			system = append(system, genai.NewPartFromText(msg.Content))
		case domain.ChatRole_Assistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}
	if len(system) > 0 {
		cfg.SystemInstruction = &genai.Content{Parts: system}
	}
	return cfg, contents
}

// convSchema translates a JSON schema into the OpenAPI subset Gemini accepts.
func convSchema(schema *jsonschema.Schema) *genai.Schema {
	if schema == nil {
		return nil
	}

	enums := make([]string, 0, len(schema.Enum))
	for _, v := range schema.Enum {
		enums = append(enums, fmt.Sprintf("%v", v))
	}

	gs := genai.Schema{
		Format:      schema.Format,
		Description: schema.Description,
		Enum:        enums,
		Items:       convSchema(schema.Items),
		Required:    schema.Required,
		Minimum:     schema.Minimum,
		Maximum:     schema.Maximum,
	}
	if schema.MinItems != nil {
		gs.MinItems = genai.Ptr(int64(*schema.MinItems))
	}
	if schema.MaxItems != nil {
		gs.MaxItems = genai.Ptr(int64(*schema.MaxItems))
	}

	if n := len(schema.Properties); n > 0 {
		gs.Properties = make(map[string]*genai.Schema, n)
		for k, prop := range schema.Properties {
			gs.Properties[k] = convSchema(prop)
		}
		gs.PropertyOrdering = schema.Required
	}

	typ := schema.Type
	if typ == "" {
		for _, t := range schema.Types {
			if t == "null" {
				gs.Nullable = genai.Ptr(true)
				continue
			}
			typ = t
		}
	}
	switch typ {
	case "object":
		gs.Type = genai.TypeObject
	case "array":
		gs.Type = genai.TypeArray
	case "string":
		gs.Type = genai.TypeString
	case "number":
		gs.Type = genai.TypeNumber
	case "integer":
		gs.Type = genai.TypeInteger
	case "boolean":
		gs.Type = genai.TypeBoolean
	}
	return &gs
}

func convUsage(usage *genai.GenerateContentResponseUsageMetadata) domain.LLMUsage {
	if usage == nil {
		return domain.LLMUsage{}
	}
	return domain.LLMUsage{
		PromptTokens:     int(usage.PromptTokenCount),
		CompletionTokens: int(usage.CandidatesTokenCount),
		TotalTokens:      int(usage.PromptTokenCount + usage.CandidatesTokenCount),
	}
}
