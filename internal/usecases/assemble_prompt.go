package usecases

import (
	"embed"
	"fmt"
	"math"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/advice.yml
var advicePrompt embed.FS

// promptSignals is the structured context handed to the model next to the free text.
type promptSignals struct {
	Topic          string  `toon:"topic"`
	RetrievalScore float64 `toon:"retrieval_score"`
	Sentiment      string  `toon:"sentiment"`
	SentimentScore float64 `toon:"sentiment_score"`
	FactCount      int     `toon:"fact_count"`
}

// AssemblePrompt builds the advice prompt from the user input, its sentiment and the retrieved facts.
// The same inputs always produce the same messages.
func AssemblePrompt(symptoms, emotion string, sentiment domain.SentimentResult, retrieval domain.RetrievalResult) (domain.PromptRequest, error) {
	schemaJSON, err := domain.AdviceSchemaJSON()
	if err != nil {
		return domain.PromptRequest{}, err
	}
	schemaGuide, err := domain.DescribeAdviceSchema()
	if err != nil {
		return domain.PromptRequest{}, err
	}

	signals, err := toon.MarshalString(promptSignals{
		Topic:          retrieval.Topic,
		RetrievalScore: roundScore(retrieval.Score),
		Sentiment:      string(sentiment.Label),
		SentimentScore: roundScore(sentiment.Score),
		FactCount:      len(retrieval.Facts),
	}, toon.WithLengthMarkers(true))
	if err != nil {
		return domain.PromptRequest{}, fmt.Errorf("failed to marshal prompt signals: %w", err)
	}

	file, err := advicePrompt.Open("prompts/advice.yml")
	if err != nil {
		return domain.PromptRequest{}, fmt.Errorf("failed to open advice prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return domain.PromptRequest{}, fmt.Errorf("failed to decode advice prompt: %w", err)
	}

	facts := make([]string, 0, len(retrieval.Facts))
	for _, fact := range retrieval.Facts {
		facts = append(facts, "- "+fact)
	}

	for i, msg := range messages {
		msg.Content = fmt.Sprintf(
			msg.Content,
			symptoms,
			emotion,
			sentiment.Label,
			fmt.Sprintf("%.2f", sentiment.Score),
			strings.Join(facts, "\n"),
			signals,
			schemaGuide,
			schemaJSON,
			domain.CanonicalDisclaimer,
			retrieval.Topic,
		)
		messages[i] = msg
	}

	return domain.PromptRequest{
		Symptoms:  symptoms,
		Emotion:   emotion,
		Sentiment: sentiment,
		Topic:     retrieval.Topic,
		Facts:     append([]string(nil), retrieval.Facts...),
		Messages:  messages,
	}, nil
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
