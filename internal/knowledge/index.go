package knowledge

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/telemetry"
)

// TopicEmbeddingSet holds one vector per fact of a topic, in fact order.
type TopicEmbeddingSet struct {
	Topic   string
	Facts   []string
	Vectors [][]float64
}

// EmbeddingIndex is the vectorized knowledge base.
// It is built once and never mutated, so it can be shared between goroutines.
type EmbeddingIndex struct {
	sets        []TopicEmbeddingSet
	dimension   int
	totalTokens int
}

// Sets returns the topic embedding sets in knowledge base order.
func (idx EmbeddingIndex) Sets() []TopicEmbeddingSet {
	return idx.sets
}

// Dimension returns the vector length of the indexed facts.
func (idx EmbeddingIndex) Dimension() int {
	return idx.dimension
}

// TotalTokens returns the tokens spent embedding the knowledge base.
func (idx EmbeddingIndex) TotalTokens() int {
	return idx.totalTokens
}

// BuildEmbeddingIndex vectorizes every fact of the knowledge base exactly once,
// in topic then fact order. Any encoder failure aborts the build.
func BuildEmbeddingIndex(ctx context.Context, kb domain.KnowledgeBase, encoder domain.SemanticEncoder, model string) (EmbeddingIndex, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := kb.Validate(); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return EmbeddingIndex{}, err
	}

	idx := EmbeddingIndex{sets: make([]TopicEmbeddingSet, 0, len(kb.Entries))}
	for _, entry := range kb.Entries {
		set := TopicEmbeddingSet{
			Topic:   entry.Topic,
			Facts:   append([]string(nil), entry.Facts...),
			Vectors: make([][]float64, 0, len(entry.Facts)),
		}
		for i, fact := range entry.Facts {
			vector, err := encoder.VectorizeFact(spanCtx, model, entry.Topic, fact)
			if err != nil {
				err = fmt.Errorf("failed to vectorize fact %d of topic '%s': %w", i, entry.Topic, err)
				telemetry.RecordErrorAndStatus(span, err)
				return EmbeddingIndex{}, err
			}
			if idx.dimension == 0 {
				idx.dimension = len(vector.Vector)
			}
			idx.totalTokens += vector.TotalTokens
			set.Vectors = append(set.Vectors, vector.Vector)
		}
		idx.sets = append(idx.sets, set)
	}

	RecordEmbeddingTokens(spanCtx, "fact", idx.totalTokens)
	telemetry.RecordErrorAndStatus(span, nil)
	return idx, nil
}
