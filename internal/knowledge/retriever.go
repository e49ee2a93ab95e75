package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/common"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SemanticRetriever selects the knowledge base topic most similar to a query.
// A topic scores the best similarity of any of its facts.
type SemanticRetriever struct {
	index          EmbeddingIndex
	encoder        domain.SemanticEncoder
	embeddingModel string
}

// NewSemanticRetriever creates a retriever over a built index.
func NewSemanticRetriever(index EmbeddingIndex, encoder domain.SemanticEncoder, embeddingModel string) SemanticRetriever {
	return SemanticRetriever{
		index:          index,
		encoder:        encoder,
		embeddingModel: embeddingModel,
	}
}

// Retrieve returns the full fact list of the best matching topic.
// Exact ties go to the topic declared first. A blank query is never sent to the
// encoder: it scores 0 against every fact, so the first topic is returned.
func (r SemanticRetriever) Retrieve(ctx context.Context, query string) (domain.RetrievalResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	queryVector, err := r.vectorizeQuery(spanCtx, query)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.RetrievalResult{}, err
	}

	sets := r.index.Sets()
	if len(sets) == 0 {
		err := domain.NewConfigurationErr("knowledge index is empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.RetrievalResult{}, err
	}

	best := 0
	bestScore := common.MaxSimilarity(queryVector, sets[0].Vectors)
	for i := 1; i < len(sets); i++ {
		score := common.MaxSimilarity(queryVector, sets[i].Vectors)
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	winner := sets[best]
	span.SetAttributes(
		attribute.String("knowledge.topic", winner.Topic),
		attribute.Float64("knowledge.score", bestScore),
	)
	RecordRetrievalScore(spanCtx, winner.Topic, bestScore)

	return domain.RetrievalResult{
		Topic: winner.Topic,
		Facts: append([]string(nil), winner.Facts...),
		Score: bestScore,
	}, nil
}

// Topic returns a copy of the facts of the named topic.
func (r SemanticRetriever) Topic(name string) (domain.KnowledgeEntry, error) {
	for _, set := range r.index.Sets() {
		if set.Topic == name {
			return domain.KnowledgeEntry{
				Topic: set.Topic,
				Facts: append([]string(nil), set.Facts...),
			}, nil
		}
	}
	return domain.KnowledgeEntry{}, domain.NewNotFoundErr(fmt.Sprintf("knowledge topic %q not found", name))
}

// Topics lists the indexed topics in knowledge base order.
func (r SemanticRetriever) Topics() []domain.TopicSummary {
	sets := r.index.Sets()
	topics := make([]domain.TopicSummary, 0, len(sets))
	for _, set := range sets {
		topics = append(topics, domain.TopicSummary{Topic: set.Topic, FactCount: len(set.Facts)})
	}
	return topics
}

func (r SemanticRetriever) vectorizeQuery(ctx context.Context, query string) ([]float64, error) {
	if strings.TrimSpace(query) == "" {
		trace.SpanFromContext(ctx).AddEvent("blank query, using zero vector")
		return make([]float64, r.index.Dimension()), nil
	}

	vector, err := r.encoder.VectorizeQuery(ctx, r.embeddingModel, query)
	if err != nil {
		return nil, domain.NewTransportErr("failed to vectorize query", err)
	}
	RecordEmbeddingTokens(ctx, "query", vector.TotalTokens)
	return vector.Vector, nil
}
