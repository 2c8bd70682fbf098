package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGenerator_SameMillisecond(t *testing.T) {
	fixed := time.UnixMilli(1_750_000_000_000)
	g := &IDGenerator{now: func() time.Time { return fixed }}

	first := g.NextID()
	second := g.NextID()
	third := g.NextID()

	assert.Equal(t, fixed.UnixMilli(), first)
	assert.Equal(t, first+1, second)
	assert.Equal(t, second+1, third)
}

func TestIDGenerator_ClockStepsBack(t *testing.T) {
	now := time.UnixMilli(2_000)
	g := &IDGenerator{now: func() time.Time { return now }}

	a := g.NextID()
	now = time.UnixMilli(1_000)
	b := g.NextID()

	assert.Greater(t, b, a)
}

func TestIDGenerator_Seed(t *testing.T) {
	g := &IDGenerator{now: func() time.Time { return time.UnixMilli(10) }}
	g.Seed(500)
	assert.Equal(t, int64(501), g.NextID())

	g.Seed(100)
	assert.Equal(t, int64(502), g.NextID())
}

func TestIDGenerator_ConcurrentUnique(t *testing.T) {
	g := NewIDGenerator()

	const workers, perWorker = 8, 500
	ids := make(chan int64, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- g.NextID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]struct{}, workers*perWorker)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)
}
