package sentiment

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexiconScorer_Score(t *testing.T) {
	lex, err := DefaultLexicon()
	require.NoError(t, err)
	scorer := NewLexiconScorer(lex)

	tests := map[string]struct {
		text      string
		wantLabel domain.SentimentLabel
		wantScore float64
	}{
		"empty-text": {
			text:      "",
			wantLabel: domain.SentimentLabel_Neutral,
		},
		"blank-text": {
			text:      "   \n\t",
			wantLabel: domain.SentimentLabel_Neutral,
		},
		"no-known-words": {
			text:      "the cat sat on the mat",
			wantLabel: domain.SentimentLabel_Neutral,
		},
		"scared-and-serious": {
			text:      "I'm scared it's something serious",
			wantLabel: domain.SentimentLabel_Negative,
			wantScore: 0.5,
		},
		"positive": {
			text:      "I feel calm and hopeful",
			wantLabel: domain.SentimentLabel_Positive,
			wantScore: 0.55,
		},
		"negator-flips-polarity": {
			text:      "I am not happy",
			wantLabel: domain.SentimentLabel_Negative,
			wantScore: 0.7,
		},
		"contraction-negates": {
			text:      "I don't feel good",
			wantLabel: domain.SentimentLabel_Negative,
			wantScore: 0.5,
		},
		"intensifier-scales": {
			text:      "very worried",
			wantLabel: domain.SentimentLabel_Negative,
			wantScore: 0.9,
		},
		"clamped-to-one": {
			text:      "extremely terrified",
			wantLabel: domain.SentimentLabel_Negative,
			wantScore: 1.0,
		},
		"balanced-is-neutral": {
			text:      "glad but sad",
			wantLabel: domain.SentimentLabel_Neutral,
		},
		"case-insensitive": {
			text:      "HAPPY",
			wantLabel: domain.SentimentLabel_Positive,
			wantScore: 0.7,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := scorer.Score(context.Background(), tt.text)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.InDelta(t, tt.wantScore, got.Score, 0.0001)
			if got.Label == domain.SentimentLabel_Neutral {
				assert.Zero(t, got.Score)
			} else {
				assert.Greater(t, got.Score, 0.0)
			}
		})
	}
}

func TestLoadLexicon(t *testing.T) {
	tests := map[string]struct {
		doc     string
		wantErr string
	}{
		"valid": {
			doc: "words:\n  good: 0.5\n",
		},
		"no-words": {
			doc:     "negators: [not]\n",
			wantErr: "sentiment lexicon has no words",
		},
		"valence-out-of-range": {
			doc:     "words:\n  ecstatic: 1.5\n",
			wantErr: `sentiment lexicon word "ecstatic" has valence 1.50 outside [-1, 1]`,
		},
		"malformed": {
			doc:     "words: [",
			wantErr: "failed to decode sentiment lexicon",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadLexicon([]byte(tt.doc))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
