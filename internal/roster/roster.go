// Package roster maintains the in-memory set of active members and the
// derived matching matrix the Detector reads. A refresh that changes the
// identity set rebuilds the matrix off to the side and publishes it with a
// single pointer swap, so matching never observes a partial update.
package roster

import (
	"math"
	"sync"
	"sync/atomic"

	"edgecam/internal/model"
)

const embeddingLen = 512

// Matrix is an immutable N x 512 embedding matrix plus per-row L2 norms.
// Once built it is never mutated; RosterCache publishes a fresh Matrix by
// swapping a pointer, so readers in the Detector always see either the old
// or the new matrix, never a half-built one.
type Matrix struct {
	Members []*model.Member
	Rows    [][]float32
	Norms   []float32
}

// Build computes a Matrix from a member list. Members without an embedding
// of the expected length are skipped by the caller before Build is invoked.
func Build(members []*model.Member) *Matrix {
	m := &Matrix{
		Members: make([]*model.Member, len(members)),
		Rows:    make([][]float32, len(members)),
		Norms:   make([]float32, len(members)),
	}
	for i, mem := range members {
		m.Members[i] = mem
		row := make([]float32, len(mem.FaceEmbedding))
		copy(row, mem.FaceEmbedding)
		m.Rows[i] = row
		m.Norms[i] = l2Norm(row)
	}
	return m
}

func l2Norm(v []float32) float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return float32(math.Sqrt(sum))
}

// Match runs vectorized cosine-similarity matching of one face embedding
// against the matrix: sims = (M . e) / (norms * ||e||). Returns the best
// member and similarity even when no row clears threshold, so callers can
// still log the closest candidate.
func (m *Matrix) Match(embedding []float32, threshold float32) (member *model.Member, similarity float32, isMatch bool) {
	if len(m.Rows) == 0 {
		return nil, 0, false
	}
	eNorm := l2Norm(embedding)
	if eNorm == 0 {
		return nil, 0, false
	}

	bestIdx := -1
	var bestSim float32
	for i, row := range m.Rows {
		if m.Norms[i] == 0 || len(row) != len(embedding) {
			continue
		}
		var dot float64
		for j, v := range row {
			dot += float64(v) * float64(embedding[j])
		}
		sim := float32(dot) / (m.Norms[i] * eNorm)
		if bestIdx == -1 || sim > bestSim {
			bestIdx = i
			bestSim = sim
		}
	}
	if bestIdx == -1 {
		return nil, 0, false
	}
	if bestSim >= threshold {
		return m.Members[bestIdx], bestSim, true
	}
	return nil, bestSim, false
}

// Len returns the row count, used by the testable property that asserts it
// equals the member-list length after every refresh.
func (m *Matrix) Len() int {
	return len(m.Rows)
}

// Source refreshes the active-member list from the external data store. The
// store itself is not defined here; callers supply a function satisfying
// this signature, typically a thin client for whatever system of record
// owns the members.
type Source func() ([]*model.Member, error)

// Cache is the C6 RosterCache: it periodically (or on forced demand)
// refreshes from a Source, filters out members with no embedding, and
// rebuilds the Matrix only when the identity set actually changed.
type Cache struct {
	source Source

	mu       sync.Mutex
	identity map[string]struct{}

	matrix atomic.Pointer[Matrix]
}

// NewCache constructs a roster cache around a refresh Source. The matrix
// starts out empty so the Detector has a defined (if unmatched) zero state
// before the first refresh completes.
func NewCache(source Source) *Cache {
	c := &Cache{source: source, identity: make(map[string]struct{})}
	c.matrix.Store(Build(nil))
	return c
}

// Refresh pulls the latest member list and, if the identity set changed,
// rebuilds and swaps the Matrix. Returns whether a rebuild happened.
func (c *Cache) Refresh() (bool, error) {
	members, err := c.source()
	if err != nil {
		return false, err
	}

	filtered := make([]*model.Member, 0, len(members))
	for _, m := range members {
		if len(m.FaceEmbedding) == embeddingLen {
			filtered = append(filtered, m)
		}
	}

	next := make(map[string]struct{}, len(filtered))
	for _, m := range filtered {
		next[m.IdentityKey()] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if sameSet(c.identity, next) {
		return false, nil
	}
	c.identity = next
	c.matrix.Store(Build(filtered))
	return true, nil
}

func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// Current returns the matrix currently visible to the Detector.
func (c *Cache) Current() *Matrix {
	return c.matrix.Load()
}
