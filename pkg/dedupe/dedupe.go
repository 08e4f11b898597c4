// Package dedupe generates duplicate-entity candidates over a graph, by
// label edit distance and by embedding similarity, and applies the merge
// policy for accepted candidates. The embedding collaborator is injected;
// a node whose embedding call fails is excluded from pairing instead of
// failing the run.
package dedupe

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/histomap/backend/pkg/common"
	"github.com/histomap/backend/pkg/logger"
	"github.com/histomap/backend/pkg/similarity"
)

const (
	// DefaultLexicalThreshold is the minimum label similarity for a
	// lexical candidate.
	DefaultLexicalThreshold = 0.7
	// DefaultSemanticThreshold is the minimum embedding cosine
	// similarity for a semantic candidate.
	DefaultSemanticThreshold = 0.88
	// DefaultSemanticNodeCap bounds how many nodes (graph-order prefix)
	// the semantic pass embeds, to bound collaborator call volume. The
	// lexical pass scans the full node set; its O(n²) cost is fine at
	// the hundreds-of-nodes scale this system runs at.
	DefaultSemanticNodeCap = 40

	defaultParallelEmbeddings = 4
)

// Embedder is the embedding collaborator contract: text in, fixed-length
// vector out, empty vector or error on failure.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, input []byte) ([]float32, error)
}

// Detector finds duplicate candidates. It owns an embedding cache keyed
// by exact input text, unbounded for the detector's lifetime (one
// analysis session); create a fresh Detector per run to reset it.
type Detector struct {
	embedder           Embedder
	semanticNodeCap    int
	parallelEmbeddings int

	mu    sync.Mutex
	cache map[string][]float32
}

// Params configures a Detector.
type Params struct {
	Embedder Embedder
	// SemanticNodeCap overrides DefaultSemanticNodeCap when > 0.
	SemanticNodeCap int
	// ParallelEmbeddings caps concurrent embedding calls; <= 0 uses a
	// small default.
	ParallelEmbeddings int
}

// NewDetector creates a Detector with an empty cache.
func NewDetector(params Params) *Detector {
	cap := params.SemanticNodeCap
	if cap <= 0 {
		cap = DefaultSemanticNodeCap
	}
	par := params.ParallelEmbeddings
	if par <= 0 {
		par = defaultParallelEmbeddings
	}
	return &Detector{
		embedder:           params.Embedder,
		semanticNodeCap:    cap,
		parallelEmbeddings: par,
		cache:              make(map[string][]float32),
	}
}

// Lexical scans every unordered pair of same-type nodes and emits a
// candidate when the label similarity reaches the threshold. A threshold
// <= 0 uses the default. Candidates are sorted by similarity descending,
// ties keeping pair order.
func (d *Detector) Lexical(g *common.Graph, threshold float64) []common.DuplicateCandidate {
	if threshold <= 0 {
		threshold = DefaultLexicalThreshold
	}

	candidates := make([]common.DuplicateCandidate, 0)
	for i := 0; i < len(g.Nodes); i++ {
		for j := i + 1; j < len(g.Nodes); j++ {
			a, b := &g.Nodes[i], &g.Nodes[j]
			if a.Type != b.Type {
				continue
			}
			sim := similarity.Lexical(a.Label, b.Label)
			if sim < threshold {
				continue
			}
			candidates = append(candidates, common.DuplicateCandidate{
				NodeA:      a.ID,
				NodeB:      b.ID,
				Similarity: sim,
				Reason:     fmt.Sprintf("label similarity %.2f", sim),
			})
		}
	}

	sortCandidates(candidates)
	return candidates
}

// Semantic embeds the text "label: description" for a bounded prefix of
// the node set and emits candidates for same-type pairs whose cosine
// similarity reaches the threshold. Nodes whose embedding call fails or
// returns an empty vector are excluded from pairing. A threshold <= 0
// uses the default.
func (d *Detector) Semantic(ctx context.Context, g *common.Graph, threshold float64) []common.DuplicateCandidate {
	if threshold <= 0 {
		threshold = DefaultSemanticThreshold
	}
	if d.embedder == nil {
		return []common.DuplicateCandidate{}
	}

	n := len(g.Nodes)
	if n > d.semanticNodeCap {
		n = d.semanticNodeCap
	}

	vectors := d.embedNodes(ctx, g.Nodes[:n])

	candidates := make([]common.DuplicateCandidate, 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := &g.Nodes[i], &g.Nodes[j]
			if a.Type != b.Type {
				continue
			}
			va, okA := vectors[a.ID]
			vb, okB := vectors[b.ID]
			if !okA || !okB {
				continue
			}
			sim := similarity.Cosine(va, vb)
			if sim < threshold {
				continue
			}
			candidates = append(candidates, common.DuplicateCandidate{
				NodeA:      a.ID,
				NodeB:      b.ID,
				Similarity: sim,
				Reason:     fmt.Sprintf("embedding similarity %.2f", sim),
			})
		}
	}

	sortCandidates(candidates)
	return candidates
}

// embedNodes fetches a vector per node, through the cache, with bounded
// parallelism. Results are keyed by node id so concurrent completions
// cannot be matched to the wrong node. Failed nodes are simply absent.
func (d *Detector) embedNodes(ctx context.Context, nodes []common.Node) map[string][]float32 {
	vectors := make(map[string][]float32, len(nodes))
	var mu sync.Mutex

	eg, gCtx := errgroup.WithContext(ctx)
	eg.SetLimit(d.parallelEmbeddings)

	for i := range nodes {
		node := nodes[i]
		eg.Go(func() error {
			vec, err := d.embedText(gCtx, EmbeddingText(&node))
			if err != nil {
				logger.Warn("[Dedupe] Embedding failed, excluding node", "node", node.ID, "err", err)
				return nil
			}
			if len(vec) == 0 {
				logger.Debug("[Dedupe] Empty embedding, excluding node", "node", node.ID)
				return nil
			}
			mu.Lock()
			vectors[node.ID] = vec
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = eg.Wait()

	return vectors
}

func (d *Detector) embedText(ctx context.Context, text string) ([]float32, error) {
	d.mu.Lock()
	if vec, ok := d.cache[text]; ok {
		d.mu.Unlock()
		return vec, nil
	}
	d.mu.Unlock()

	vec, err := d.embedder.GenerateEmbedding(ctx, []byte(text))
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.cache[text] = vec
	d.mu.Unlock()
	return vec, nil
}

// EmbeddingText is the canonical text a node is embedded under.
func EmbeddingText(n *common.Node) string {
	return fmt.Sprintf("%s: %s", n.Label, n.Description)
}

func sortCandidates(candidates []common.DuplicateCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Similarity > candidates[j].Similarity
	})
}
