package store

import (
	"context"
	"errors"

	"github.com/histomap/backend/pkg/logger"
)

// EmbeddingSource produces a vector for a piece of text. The AI client
// adapters satisfy this.
type EmbeddingSource interface {
	GenerateEmbedding(ctx context.Context, input []byte) ([]float32, error)
}

// CachedEmbedder wraps an EmbeddingSource with the persistent embedding
// cache, so unchanged node text never gets embedded twice across runs.
// Cache write failures degrade to a warning; the vector is still returned.
type CachedEmbedder struct {
	Source EmbeddingSource
	Cache  SnapshotStorage
}

func (e *CachedEmbedder) GenerateEmbedding(ctx context.Context, input []byte) ([]float32, error) {
	text := string(input)

	vec, err := e.Cache.GetCachedEmbedding(ctx, text)
	if err == nil {
		return vec, nil
	}
	if !errors.Is(err, ErrNotFound) {
		logger.Warn("[Store] Embedding cache lookup failed", "err", err)
	}

	vec, err = e.Source.GenerateEmbedding(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := e.Cache.PutCachedEmbedding(ctx, text, vec); err != nil {
		logger.Warn("[Store] Embedding cache write failed", "err", err)
	}
	return vec, nil
}
