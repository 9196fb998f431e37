// Package idgen issues the small sequential identifiers used to look records up.
//
// Identifiers come from a durable sequence kept by the record store, so a
// restarted process continues where the previous one stopped instead of
// reissuing identifiers that already exist. The generator caches one reserved
// block of identifiers in memory and goes back to the store when it runs out.
package idgen

import (
	"context"
	"fmt"
	"sync"

	"hospital-records-service/internal/repository"
)

// Generator hands out identifiers from a block reserved in the store.
// It is safe for concurrent use.
type Generator struct {
	seq       repository.SequenceRepository
	name      string
	blockSize int64

	mu    sync.Mutex
	next  int64
	limit int64
}

// New returns a generator over the named sequence. Block sizes below 1 are
// treated as 1, which keeps identifiers gap-free across restarts.
func New(seq repository.SequenceRepository, name string, blockSize int64) *Generator {
	if blockSize < 1 {
		blockSize = 1
	}
	return &Generator{
		seq:       seq,
		name:      name,
		blockSize: blockSize,
	}
}

// Next returns the next identifier. Against a fresh store the first call
// returns 0 and every later call returns one more than the previous one.
func (g *Generator) Next(ctx context.Context) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.next >= g.limit {
		start, err := g.seq.Reserve(ctx, g.name, g.blockSize)
		if err != nil {
			return 0, fmt.Errorf("reserve identifiers: %w", err)
		}
		g.next = start
		g.limit = start + g.blockSize
	}

	id := g.next
	g.next++
	return id, nil
}
