// Package store defines the persistence contract for graph snapshots and
// the embedding cache. The engine packages never touch storage directly;
// the server and worker load a snapshot, run the engine, and save the
// result back through this interface.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/histomap/backend/pkg/common"
)

// ErrNotFound is returned when the requested graph snapshot or cache entry
// does not exist.
var ErrNotFound = errors.New("not found")

// GraphInfo is a snapshot listing entry. Counts are derived from the stored
// document, not tracked separately.
type GraphInfo struct {
	ID        string    `json:"id"`
	NodeCount int       `json:"node_count"`
	EdgeCount int       `json:"edge_count"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SnapshotStorage persists whole-graph snapshots and caches embeddings by
// exact input text. Implementations must be safe for concurrent use.
type SnapshotStorage interface {
	LoadGraph(ctx context.Context, id string) (common.Graph, error)
	SaveGraph(ctx context.Context, id string, g common.Graph) error
	DeleteGraph(ctx context.Context, id string) error
	ListGraphs(ctx context.Context) ([]GraphInfo, error)

	// GetCachedEmbedding returns the cached vector for the exact input
	// text, or ErrNotFound when the text has never been embedded.
	GetCachedEmbedding(ctx context.Context, text string) ([]float32, error)
	PutCachedEmbedding(ctx context.Context, text string, embedding []float32) error
}
