package sentiment

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/adapters/outbound/huggingface"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	StrategyLexicon    = "lexicon"
	StrategyClassifier = "classifier"
)

// InitSentimentScorer registers the domain.SentimentScorer selected by SENTIMENT_STRATEGY.
// The classifier strategy falls back to the lexicon when the classifier cannot answer.
type InitSentimentScorer struct {
	Logger          *log.Logger  `resolve:""`
	HttpClient      *http.Client `resolve:""`
	Strategy        string       `config:"SENTIMENT_STRATEGY" default:"lexicon"`
	ClassifierURL   string       `config:"SENTIMENT_CLASSIFIER_URL" default:"-"`
	ClassifierToken string       `config:"SENTIMENT_CLASSIFIER_TOKEN" default:"-"`
}

// Initialize registers the scorer.
func (i InitSentimentScorer) Initialize(ctx context.Context) (context.Context, error) {
	lex, err := DefaultLexicon()
	if err != nil {
		return ctx, err
	}
	lexicon := NewLexiconScorer(lex)

	switch i.Strategy {
	case StrategyLexicon:
		depend.Register[domain.SentimentScorer](lexicon)
	case StrategyClassifier:
		if i.ClassifierURL == "" || i.ClassifierURL == "-" {
			return ctx, domain.NewConfigurationErr("SENTIMENT_CLASSIFIER_URL is required by the classifier sentiment strategy")
		}
		token := i.ClassifierToken
		if token == "-" {
			token = ""
		}
		depend.Register[domain.SentimentScorer](huggingface.NewClassifier(
			huggingface.NewInferenceClient(i.ClassifierURL, token, i.HttpClient),
			lexicon,
			i.Logger,
		))
	default:
		return ctx, domain.NewConfigurationErr(fmt.Sprintf("unknown sentiment strategy %q", i.Strategy))
	}

	i.Logger.Printf("SentimentScorer: using %s strategy", i.Strategy)
	return ctx, nil
}
