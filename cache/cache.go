// Package cache provides memoization for solved boards. Batch
// workloads often solve the same puzzle more than once; caching keyed
// by puzzle content turns repeats into a lookup.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"

	"github.com/pflow-xyz/go-sudoku/board"
)

// SolveCache caches solved boards keyed by a hash of the puzzle.
type SolveCache struct {
	mu        sync.RWMutex
	cache     map[string]*board.Board
	maxSize   int
	hits      int64
	misses    int64
	evictions int64
}

// NewSolveCache creates a cache with the specified maximum size.
// When the cache is full, an arbitrary entry is evicted (FIFO-ish).
// Set maxSize to 0 for an unbounded cache.
func NewSolveCache(maxSize int) *SolveCache {
	return &SolveCache{
		cache:   make(map[string]*board.Board),
		maxSize: maxSize,
	}
}

// hashBoard creates a deterministic key for a puzzle. For boards up
// to 16x16 the occupancy bitmap goes in first as a cheap
// discriminator, then the dimension and every cell value.
func hashBoard(b *board.Board) string {
	h := sha256.New()
	buf := make([]byte, 8)

	if occ, ok := b.Occupancy(); ok {
		for _, limb := range occ {
			binary.BigEndian.PutUint64(buf, limb)
			h.Write(buf)
		}
	}

	binary.BigEndian.PutUint64(buf, uint64(b.Dim()))
	h.Write(buf)
	for _, v := range b.Cells() {
		binary.BigEndian.PutUint64(buf, uint64(v))
		h.Write(buf)
	}

	return string(h.Sum(nil))
}

// Get retrieves the cached solution for a puzzle, or nil on a miss.
// The returned board is a private copy.
func (c *SolveCache) Get(puzzle *board.Board) *board.Board {
	key := hashBoard(puzzle)

	c.mu.Lock()
	defer c.mu.Unlock()

	if sol, ok := c.cache[key]; ok {
		c.hits++
		return sol.Clone()
	}
	c.misses++
	return nil
}

// Put stores a solution for a puzzle.
func (c *SolveCache) Put(puzzle, solution *board.Board) {
	key := hashBoard(puzzle)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && len(c.cache) >= c.maxSize {
		for k := range c.cache {
			delete(c.cache, k)
			c.evictions++
			break
		}
	}

	c.cache[key] = solution.Clone()
}

// GetOrCompute retrieves from cache or computes and caches the
// result. Failed computations are not cached.
func (c *SolveCache) GetOrCompute(puzzle *board.Board, compute func() (*board.Board, error)) (*board.Board, error) {
	if sol := c.Get(puzzle); sol != nil {
		return sol, nil
	}

	sol, err := compute()
	if err != nil {
		return nil, err
	}
	c.Put(puzzle, sol)
	return sol, nil
}

// Clear removes all entries from the cache.
func (c *SolveCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]*board.Board)
}

// Size returns the current number of cached entries.
func (c *SolveCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Stats holds cache counters.
type Stats struct {
	Size      int
	MaxSize   int
	Hits      int64
	Misses    int64
	Evictions int64
	HitRate   float64
}

// Stats returns a snapshot of the cache counters.
func (c *SolveCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}
	return Stats{
		Size:      len(c.cache),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		HitRate:   hitRate,
	}
}
