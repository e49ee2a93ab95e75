package openaicompat

import (
	"context"
	"errors"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/telemetry"
	"github.com/openai/openai-go"
)

// SemanticEncoder adapts OpenAI embeddings to domain.SemanticEncoder.
type SemanticEncoder struct {
	client openai.Client
}

// NewSemanticEncoder creates a new adapter.
func NewSemanticEncoder(client openai.Client) SemanticEncoder {
	return SemanticEncoder{client: client}
}

// VectorizeFact implements domain.SemanticEncoder. Facts are embedded as-is.
func (e SemanticEncoder) VectorizeFact(ctx context.Context, model, _, fact string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	vec, err := e.embed(spanCtx, model, fact)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

// VectorizeQuery implements domain.SemanticEncoder.
func (e SemanticEncoder) VectorizeQuery(ctx context.Context, model, query string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	vec, err := e.embed(spanCtx, model, query)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

func (e SemanticEncoder) embed(ctx context.Context, model, input string) (domain.EmbeddingVector, error) {
	if model == "" {
		return domain.EmbeddingVector{}, errors.New("model is required")
	}
	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(model),
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(input)},
	})
	if err != nil {
		return domain.EmbeddingVector{}, err
	}
	if len(resp.Data) == 0 {
		return domain.EmbeddingVector{}, errors.New("no embedding data in response")
	}
	return domain.EmbeddingVector{
		Vector:      resp.Data[0].Embedding,
		TotalTokens: int(resp.Usage.TotalTokens),
	}, nil
}
