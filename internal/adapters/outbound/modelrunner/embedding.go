package modelrunner

import (
	"fmt"
	"strings"
)

// EmbeddingGenerator defines the interface for generating embedding inputs for facts and queries.
type EmbeddingGenerator interface {
	// GenerateIndexingPrompt creates the text embedded for a knowledge base fact.
	GenerateIndexingPrompt(topic, fact string) string
	// GenerateSearchPrompt creates the text embedded for a user query.
	GenerateSearchPrompt(query string) string
}

// EmbeddingFactory provides a method to get an EmbeddingGenerator based on the model name.
type EmbeddingFactory interface {
	// Get returns an EmbeddingGenerator for the specified model name.
	Get(model string) EmbeddingGenerator
}

// embeddingFactory is the default implementation of EmbeddingFactory.
type embeddingFactory struct {
}

func (f embeddingFactory) Get(model string) EmbeddingGenerator {
	if strings.Contains(model, "embeddinggemma") {
		return gemmaEmbedding{}
	}
	return defaultEmbeddingGenerator{}
}

// gemmaEmbedding implements the EmbeddingGenerator interface for the Gemma embedding model,
// which expects task prefixes on its inputs.
type gemmaEmbedding struct{}

func (a gemmaEmbedding) GenerateIndexingPrompt(topic, fact string) string {
	return fmt.Sprintf("title: %s | text: %s", strings.ReplaceAll(topic, "_", " "), fact)
}

func (a gemmaEmbedding) GenerateSearchPrompt(query string) string {
	return fmt.Sprintf("task: search result | query: %s", query)
}

// defaultEmbeddingGenerator embeds the raw text, for models without task prefixes.
type defaultEmbeddingGenerator struct{}

func (a defaultEmbeddingGenerator) GenerateIndexingPrompt(_, fact string) string {
	return fact
}

func (a defaultEmbeddingGenerator) GenerateSearchPrompt(query string) string {
	return query
}
