package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/common"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/telemetry"
	"google.golang.org/genai"
)

const (
	taskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	taskRetrievalQuery    = "RETRIEVAL_QUERY"
)

// SemanticEncoder adapts genai embeddings to domain.SemanticEncoder.
type SemanticEncoder struct {
	client *genai.Client
}

// NewSemanticEncoder creates a new adapter.
func NewSemanticEncoder(client *genai.Client) SemanticEncoder {
	return SemanticEncoder{client: client}
}

// VectorizeFact implements domain.SemanticEncoder.
func (e SemanticEncoder) VectorizeFact(ctx context.Context, model, topic, fact string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	vec, err := e.embed(spanCtx, model, fact, &genai.EmbedContentConfig{
		TaskType: taskRetrievalDocument,
		Title:    strings.ReplaceAll(topic, "_", " "),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

// VectorizeQuery implements domain.SemanticEncoder.
func (e SemanticEncoder) VectorizeQuery(ctx context.Context, model, query string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	vec, err := e.embed(spanCtx, model, query, &genai.EmbedContentConfig{
		TaskType: taskRetrievalQuery,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

func (e SemanticEncoder) embed(ctx context.Context, model, text string, cfg *genai.EmbedContentConfig) (domain.EmbeddingVector, error) {
	if model == "" {
		return domain.EmbeddingVector{}, errors.New("model is required")
	}
	resp, err := e.client.Models.EmbedContent(ctx, model, genai.Text(text), cfg)
	if err != nil {
		return domain.EmbeddingVector{}, err
	}
	if len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil {
		return domain.EmbeddingVector{}, errors.New("no embedding data in response")
	}
	// The Gemini API does not report token usage for embeddings.
	return domain.EmbeddingVector{
		Vector: common.Float32sToFloat64s(resp.Embeddings[0].Values),
	}, nil
}
