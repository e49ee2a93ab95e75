package usecases

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter              = otel.Meter("usecases")
	LLMTokensUsed      metric.Int64Counter
	AdviceOutcomes     metric.Int64Counter
	GenerationDuration metric.Float64Histogram
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	// Advice requests by outcome (VALID or an error kind)
	AdviceOutcomes, err = meter.Int64Counter(
		"advice_results_total",
		metric.WithDescription("Total advice results by outcome"),
	)
	if err != nil {
		panic(err)
	}

	GenerationDuration, err = meter.Float64Histogram(
		"llm_generation_duration_seconds",
		metric.WithDescription("Duration of generation calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordAdviceOutcome records the outcome of one advice request.
func RecordAdviceOutcome(ctx context.Context, outcome string) {
	AdviceOutcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordGenerationDuration records how long a generation call took and whether it failed.
func RecordGenerationDuration(ctx context.Context, model string, elapsed time.Duration, err error) {
	GenerationDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("model", model),
		attribute.Bool("failed", err != nil),
	))
}
