package knowledge

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitKnowledgeRetriever loads the knowledge base, builds the embedding index
// and registers the KnowledgeRetriever. Any failure aborts startup.
type InitKnowledgeRetriever struct {
	Logger            *log.Logger            `resolve:""`
	SemanticEncoder   domain.SemanticEncoder `resolve:""`
	EmbeddingModel    string                 `config:"LLM_EMBEDDING_MODEL"`
	KnowledgeBasePath string                 `config:"KNOWLEDGE_BASE_PATH" default:"-"`
}

// Initialize builds the index and registers the retriever.
func (i InitKnowledgeRetriever) Initialize(ctx context.Context) (context.Context, error) {
	kb, err := LoadKnowledgeBaseFile(i.KnowledgeBasePath)
	if err != nil {
		return ctx, err
	}

	index, err := BuildEmbeddingIndex(ctx, kb, i.SemanticEncoder, i.EmbeddingModel)
	if err != nil {
		return ctx, fmt.Errorf("failed to build knowledge embedding index: %w", err)
	}

	i.Logger.Printf("KnowledgeRetriever: indexed %d topics and %d facts (dimension %d, %d tokens)",
		len(kb.Entries), kb.FactCount(), index.Dimension(), index.TotalTokens())

	depend.Register[domain.KnowledgeRetriever](NewSemanticRetriever(index, i.SemanticEncoder, i.EmbeddingModel))
	return ctx, nil
}
