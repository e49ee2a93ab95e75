package knowledge

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInitKnowledgeRetriever_Initialize(t *testing.T) {
	t.Run("registers-retriever", func(t *testing.T) {
		depend.ClearContainer()
		se := mocks.NewMockSemanticEncoder(t)
		se.EXPECT().VectorizeFact(mock.Anything, "embed-model", mock.Anything, mock.Anything).
			Return(domain.EmbeddingVector{Vector: []float64{1, 0}, TotalTokens: 1}, nil)

		i := InitKnowledgeRetriever{
			Logger:            log.New(io.Discard, "", 0),
			SemanticEncoder:   se,
			EmbeddingModel:    "embed-model",
			KnowledgeBasePath: "-",
		}

		ctx, err := i.Initialize(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, ctx)

		r, err := depend.Resolve[domain.KnowledgeRetriever]()
		require.NoError(t, err)
		assert.Equal(t, "respiratory_infection", r.Topics()[0].Topic)
	})

	t.Run("encoder-failure-aborts-startup", func(t *testing.T) {
		depend.ClearContainer()
		se := mocks.NewMockSemanticEncoder(t)
		se.EXPECT().VectorizeFact(mock.Anything, "embed-model", mock.Anything, mock.Anything).
			Return(domain.EmbeddingVector{}, errors.New("unauthorized"))

		i := InitKnowledgeRetriever{
			Logger:            log.New(io.Discard, "", 0),
			SemanticEncoder:   se,
			EmbeddingModel:    "embed-model",
			KnowledgeBasePath: "-",
		}

		_, err := i.Initialize(context.Background())
		assert.ErrorContains(t, err, "failed to build knowledge embedding index")

		_, err = depend.Resolve[domain.KnowledgeRetriever]()
		assert.Error(t, err)
	})
}
