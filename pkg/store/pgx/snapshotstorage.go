// Package pgx implements store.SnapshotStorage on PostgreSQL. Snapshots are
// stored as JSONB documents in the export envelope shape; embeddings are
// cached in a pgvector column keyed by a hash of the exact input text.
package pgx

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/histomap/backend/pkg/common"
	"github.com/histomap/backend/pkg/logger"
	"github.com/histomap/backend/pkg/store"

	pgxv5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pgvector/pgvector-go"
)

type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgxv5.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgxv5.Row
	Begin(ctx context.Context) (pgxv5.Tx, error)
}

// SnapshotDBStorage implements the store.SnapshotStorage interface using
// PostgreSQL with pgvector. It serializes writes with a mutex so concurrent
// enrichment jobs cannot interleave partial snapshot updates.
type SnapshotDBStorage struct {
	conn   pgxIConn
	dbLock sync.Mutex
}

// NewSnapshotDBStorageWithConnection creates a new SnapshotDBStorage using
// an existing database connection or pool.
func NewSnapshotDBStorageWithConnection(conn pgxIConn) *SnapshotDBStorage {
	return &SnapshotDBStorage{
		conn:   conn,
		dbLock: sync.Mutex{},
	}
}

// LoadGraph fetches the snapshot with the given id and decodes it from the
// export envelope shape.
func (s *SnapshotDBStorage) LoadGraph(ctx context.Context, id string) (common.Graph, error) {
	var data []byte
	err := s.conn.QueryRow(ctx,
		`SELECT data FROM graphs WHERE public_id = $1`,
		id,
	).Scan(&data)
	if err == pgxv5.ErrNoRows {
		return common.Graph{}, store.ErrNotFound
	}
	if err != nil {
		return common.Graph{}, err
	}

	var export common.Export
	if err := json.Unmarshal(data, &export); err != nil {
		return common.Graph{}, err
	}
	return common.FromExport(export), nil
}

// SaveGraph upserts the snapshot under the given id.
func (s *SnapshotDBStorage) SaveGraph(ctx context.Context, id string, g common.Graph) error {
	data, err := json.Marshal(g.ToExport())
	if err != nil {
		return err
	}

	s.dbLock.Lock()
	defer s.dbLock.Unlock()

	_, err = s.conn.Exec(ctx,
		`INSERT INTO graphs (public_id, data)
		 VALUES ($1, $2)
		 ON CONFLICT (public_id)
		 DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		id, data,
	)
	if err != nil {
		return err
	}

	logger.Debug("[Store] Saved graph snapshot",
		"id", id, "nodes", len(g.Nodes), "edges", len(g.Edges))
	return nil
}

// DeleteGraph removes the snapshot with the given id. Deleting a missing
// snapshot returns ErrNotFound.
func (s *SnapshotDBStorage) DeleteGraph(ctx context.Context, id string) error {
	s.dbLock.Lock()
	defer s.dbLock.Unlock()

	tag, err := s.conn.Exec(ctx,
		`DELETE FROM graphs WHERE public_id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ListGraphs returns a listing entry per stored snapshot, newest first.
// Node and edge counts come from the JSONB document itself.
func (s *SnapshotDBStorage) ListGraphs(ctx context.Context) ([]store.GraphInfo, error) {
	rows, err := s.conn.Query(ctx,
		`SELECT public_id,
		        COALESCE(jsonb_array_length(data->'nodes'), 0),
		        COALESCE(jsonb_array_length(data->'edges'), 0),
		        updated_at
		 FROM graphs
		 ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	infos := []store.GraphInfo{}
	for rows.Next() {
		var info store.GraphInfo
		if err := rows.Scan(&info.ID, &info.NodeCount, &info.EdgeCount, &info.UpdatedAt); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// GetCachedEmbedding returns the cached vector for the exact input text.
func (s *SnapshotDBStorage) GetCachedEmbedding(ctx context.Context, text string) ([]float32, error) {
	var vec pgvector.Vector
	err := s.conn.QueryRow(ctx,
		`SELECT embedding FROM embedding_cache WHERE input_hash = $1`,
		hashText(text),
	).Scan(&vec)
	if err == pgxv5.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return vec.Slice(), nil
}

// PutCachedEmbedding stores the vector for the exact input text. An existing
// entry for the same text is overwritten.
func (s *SnapshotDBStorage) PutCachedEmbedding(ctx context.Context, text string, embedding []float32) error {
	s.dbLock.Lock()
	defer s.dbLock.Unlock()

	_, err := s.conn.Exec(ctx,
		`INSERT INTO embedding_cache (input_hash, embedding)
		 VALUES ($1, $2)
		 ON CONFLICT (input_hash)
		 DO UPDATE SET embedding = EXCLUDED.embedding`,
		hashText(text), pgvector.NewVector(embedding),
	)
	return err
}

func hashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
