package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/histomap/backend/pkg/common"
)

type fakeCache struct {
	vectors map[string][]float32
	puts    int
	failPut bool
}

func (f *fakeCache) LoadGraph(_ context.Context, _ string) (common.Graph, error) {
	return common.Graph{}, ErrNotFound
}
func (f *fakeCache) SaveGraph(_ context.Context, _ string, _ common.Graph) error { return nil }
func (f *fakeCache) DeleteGraph(_ context.Context, _ string) error               { return nil }
func (f *fakeCache) ListGraphs(_ context.Context) ([]GraphInfo, error)           { return nil, nil }

func (f *fakeCache) GetCachedEmbedding(_ context.Context, text string) ([]float32, error) {
	vec, ok := f.vectors[text]
	if !ok {
		return nil, ErrNotFound
	}
	return vec, nil
}

func (f *fakeCache) PutCachedEmbedding(_ context.Context, text string, embedding []float32) error {
	if f.failPut {
		return errors.New("cache unavailable")
	}
	f.vectors[text] = embedding
	f.puts++
	return nil
}

type fakeSource struct {
	vector []float32
	err    error
	calls  int
}

func (f *fakeSource) GenerateEmbedding(_ context.Context, _ []byte) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

func TestCachedEmbedderHitsCache(t *testing.T) {
	source := &fakeSource{vector: []float32{1, 2, 3}}
	cache := &fakeCache{vectors: map[string][]float32{}}
	embedder := &CachedEmbedder{Source: source, Cache: cache}

	ctx := context.Background()
	first, err := embedder.GenerateEmbedding(ctx, []byte("Roman Dmowski"))
	if err != nil {
		t.Fatalf("GenerateEmbedding returned error: %v", err)
	}
	second, err := embedder.GenerateEmbedding(ctx, []byte("Roman Dmowski"))
	if err != nil {
		t.Fatalf("GenerateEmbedding returned error: %v", err)
	}

	if source.calls != 1 {
		t.Errorf("source called %d times, want 1", source.calls)
	}
	if cache.puts != 1 {
		t.Errorf("cache written %d times, want 1", cache.puts)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached vector %v differs from original %v", second, first)
	}
}

func TestCachedEmbedderDistinctTexts(t *testing.T) {
	source := &fakeSource{vector: []float32{1}}
	cache := &fakeCache{vectors: map[string][]float32{}}
	embedder := &CachedEmbedder{Source: source, Cache: cache}

	ctx := context.Background()
	if _, err := embedder.GenerateEmbedding(ctx, []byte("a")); err != nil {
		t.Fatal(err)
	}
	if _, err := embedder.GenerateEmbedding(ctx, []byte("b")); err != nil {
		t.Fatal(err)
	}
	if source.calls != 2 {
		t.Errorf("source called %d times, want 2", source.calls)
	}
}

func TestCachedEmbedderSourceError(t *testing.T) {
	source := &fakeSource{err: errors.New("embedding service down")}
	cache := &fakeCache{vectors: map[string][]float32{}}
	embedder := &CachedEmbedder{Source: source, Cache: cache}

	if _, err := embedder.GenerateEmbedding(context.Background(), []byte("a")); err == nil {
		t.Error("expected error from failing source")
	}
	if cache.puts != 0 {
		t.Errorf("cache written %d times, want 0", cache.puts)
	}
}

func TestCachedEmbedderToleratesCacheWriteFailure(t *testing.T) {
	source := &fakeSource{vector: []float32{1, 2}}
	cache := &fakeCache{vectors: map[string][]float32{}, failPut: true}
	embedder := &CachedEmbedder{Source: source, Cache: cache}

	vec, err := embedder.GenerateEmbedding(context.Background(), []byte("a"))
	if err != nil {
		t.Fatalf("GenerateEmbedding returned error: %v", err)
	}
	if !reflect.DeepEqual(vec, []float32{1, 2}) {
		t.Errorf("got %v, want source vector", vec)
	}
}
