package domain

import (
	"context"
	"math"
	"strings"
)

// SentimentLabel is the polarity class of a piece of text.
type SentimentLabel string

const (
	SentimentLabel_Positive SentimentLabel = "POSITIVE"
	SentimentLabel_Negative SentimentLabel = "NEGATIVE"
	SentimentLabel_Neutral  SentimentLabel = "NEUTRAL"
)

// ParseSentimentLabel maps a label name to a SentimentLabel, case-insensitively.
// Unknown names map to SentimentLabel_Neutral.
func ParseSentimentLabel(s string) SentimentLabel {
	switch SentimentLabel(strings.ToUpper(strings.TrimSpace(s))) {
	case SentimentLabel_Positive:
		return SentimentLabel_Positive
	case SentimentLabel_Negative:
		return SentimentLabel_Negative
	default:
		return SentimentLabel_Neutral
	}
}

// SentimentResult is a sentiment label and its non-negative score.
// NEUTRAL always carries a zero score; POSITIVE and NEGATIVE always carry a positive one.
type SentimentResult struct {
	Label SentimentLabel
	Score float64
}

// NeutralSentiment returns the NEUTRAL/0 result.
func NeutralSentiment() SentimentResult {
	return SentimentResult{Label: SentimentLabel_Neutral, Score: 0}
}

// NewSentimentResult builds a SentimentResult that satisfies the label/score invariant.
// Negative scores are taken as magnitudes; a zero or NaN score, or an unknown label,
// collapses to NEUTRAL/0.
func NewSentimentResult(label SentimentLabel, score float64) SentimentResult {
	if math.IsNaN(score) {
		return NeutralSentiment()
	}
	score = math.Abs(score)
	switch label {
	case SentimentLabel_Positive, SentimentLabel_Negative:
		if score == 0 {
			return NeutralSentiment()
		}
		return SentimentResult{Label: label, Score: score}
	default:
		return NeutralSentiment()
	}
}

// SentimentScorer maps free text to a sentiment result.
// Implementations never fail: blank text, and any internal failure, yield a valid result.
type SentimentScorer interface {
	Score(ctx context.Context, text string) SentimentResult
}
