package domain

import "context"

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// SemanticEncoder defines embedding/vectorization behavior in domain terms.
// Implementations must return the same vector for the same input and model.
type SemanticEncoder interface {
	// VectorizeFact generates a semantic vector for one knowledge base fact.
	VectorizeFact(ctx context.Context, model, topic, fact string) (EmbeddingVector, error)
	// VectorizeQuery generates a semantic vector for one user query.
	VectorizeQuery(ctx context.Context, model, query string) (EmbeddingVector, error)
}
