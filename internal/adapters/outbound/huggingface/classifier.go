package huggingface

import (
	"context"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// Classifier adapts a text classification model to domain.SentimentScorer.
// When the model cannot answer, the fallback scorer is used instead.
type Classifier struct {
	client   InferenceClient
	fallback domain.SentimentScorer
	logger   *log.Logger
}

// NewClassifier creates a new Classifier.
func NewClassifier(client InferenceClient, fallback domain.SentimentScorer, logger *log.Logger) Classifier {
	return Classifier{
		client:   client,
		fallback: fallback,
		logger:   logger,
	}
}

// Score implements domain.SentimentScorer.
func (c Classifier) Score(ctx context.Context, text string) domain.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return domain.NeutralSentiment()
	}

	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	scores, err := c.client.Classify(spanCtx, text)
	if telemetry.RecordErrorAndStatus(span, err) {
		c.logger.Printf("SentimentClassifier: falling back to lexicon: %v", err)
		span.SetAttributes(attribute.Bool("sentiment.fallback", true))
		return c.fallback.Score(spanCtx, text)
	}

	top := scores[0]
	for _, s := range scores[1:] {
		if s.Score > top.Score {
			top = s
		}
	}
	span.SetAttributes(
		attribute.String("sentiment.label", top.Label),
		attribute.Float64("sentiment.score", top.Score),
	)

	return domain.NewSentimentResult(domain.ParseSentimentLabel(top.Label), top.Score)
}
