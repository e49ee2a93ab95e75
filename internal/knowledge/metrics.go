package knowledge

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter           = otel.Meter("knowledge")
	RetrievalScore  metric.Float64Histogram
	EmbeddingTokens metric.Int64Counter
)

func init() {
	var err error
	// Similarity of the winning topic for each retrieval
	RetrievalScore, err = meter.Float64Histogram(
		"knowledge_retrieval_score",
		metric.WithDescription("Cosine similarity of the selected knowledge topic"),
		metric.WithExplicitBucketBoundaries(0, .1, .2, .3, .4, .5, .6, .7, .8, .9, 1),
	)
	if err != nil {
		panic(err)
	}

	// Tokens consumed embedding facts and queries
	EmbeddingTokens, err = meter.Int64Counter(
		"knowledge_embedding_tokens_total",
		metric.WithDescription("Total tokens consumed by knowledge embeddings"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordRetrievalScore records the score of the topic selected by a retrieval.
func RecordRetrievalScore(ctx context.Context, topic string, score float64) {
	RetrievalScore.Record(ctx, score, metric.WithAttributes(
		attribute.String("topic", topic),
	))
}

// RecordEmbeddingTokens records tokens spent embedding facts ("fact") or queries ("query").
func RecordEmbeddingTokens(ctx context.Context, source string, totalTokens int) {
	EmbeddingTokens.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("source", source),
	))
}
