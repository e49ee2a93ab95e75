package sentiment

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"go.yaml.in/yaml/v3"
)

//go:embed lexicon.yml
var defaultLexicon []byte

// negationWindow is how many tokens a negator reaches forward.
const negationWindow = 3

var wordPattern = regexp.MustCompile(`[a-z]+(?:'[a-z]+)?`)

// Lexicon holds word valences and the modifiers applied to them.
type Lexicon struct {
	Negators     []string           `yaml:"negators"`
	Intensifiers map[string]float64 `yaml:"intensifiers"`
	Words        map[string]float64 `yaml:"words"`
}

// LoadLexicon decodes a YAML lexicon.
func LoadLexicon(data []byte) (Lexicon, error) {
	var lex Lexicon
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&lex); err != nil {
		return Lexicon{}, fmt.Errorf("failed to decode sentiment lexicon: %w", err)
	}
	if len(lex.Words) == 0 {
		return Lexicon{}, domain.NewConfigurationErr("sentiment lexicon has no words")
	}
	for word, valence := range lex.Words {
		if valence < -1 || valence > 1 {
			return Lexicon{}, domain.NewConfigurationErr(fmt.Sprintf("sentiment lexicon word %q has valence %.2f outside [-1, 1]", word, valence))
		}
	}
	return lex, nil
}

// DefaultLexicon returns the lexicon shipped with the service.
func DefaultLexicon() (Lexicon, error) {
	return LoadLexicon(defaultLexicon)
}

// LexiconScorer scores text with a polarity lexicon.
// The polarity is the mean valence of the matched words: negators flip the
// words that follow them and intensifiers scale the next word.
type LexiconScorer struct {
	negators     map[string]struct{}
	intensifiers map[string]float64
	words        map[string]float64
}

// NewLexiconScorer creates a LexiconScorer.
func NewLexiconScorer(lex Lexicon) LexiconScorer {
	negators := make(map[string]struct{}, len(lex.Negators))
	for _, n := range lex.Negators {
		negators[strings.ToLower(n)] = struct{}{}
	}
	return LexiconScorer{
		negators:     negators,
		intensifiers: lex.Intensifiers,
		words:        lex.Words,
	}
}

// Score implements domain.SentimentScorer.
func (s LexiconScorer) Score(_ context.Context, text string) domain.SentimentResult {
	return s.score(text)
}

func (s LexiconScorer) score(text string) domain.SentimentResult {
	tokens := wordPattern.FindAllString(strings.ToLower(text), -1)
	if len(tokens) == 0 {
		return domain.NeutralSentiment()
	}

	var (
		sum       float64
		matched   int
		negateFor int
		scale     = 1.0
	)
	for _, token := range tokens {
		if s.isNegator(token) {
			negateFor = negationWindow
			continue
		}
		if factor, ok := s.intensifiers[token]; ok {
			scale *= factor
			continue
		}

		if valence, ok := s.words[token]; ok {
			if negateFor > 0 {
				valence = -valence
			}
			sum += valence * scale
			matched++
		}

		scale = 1.0
		if negateFor > 0 {
			negateFor--
		}
	}

	if matched == 0 {
		return domain.NeutralSentiment()
	}

	polarity := min(max(sum/float64(matched), -1), 1)
	switch {
	case polarity > 0:
		return domain.NewSentimentResult(domain.SentimentLabel_Positive, polarity)
	case polarity < 0:
		return domain.NewSentimentResult(domain.SentimentLabel_Negative, -polarity)
	default:
		return domain.NeutralSentiment()
	}
}

func (s LexiconScorer) isNegator(token string) bool {
	if _, ok := s.negators[token]; ok {
		return true
	}
	return strings.HasSuffix(token, "n't")
}
