package utils

import (
	"sync/atomic"
	"time"
)

// IDGenerator issues int64 identifiers derived from the wall clock in
// milliseconds. When two calls land in the same millisecond (or the clock
// steps back) the previous id plus one is returned, so ids never repeat and
// always increase within a process.
type IDGenerator struct {
	last atomic.Int64
	now  func() time.Time
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// Seed makes the generator continue after id, e.g. the largest id already
// persisted, so restarted processes do not reuse stored ids.
func (g *IDGenerator) Seed(id int64) {
	for {
		last := g.last.Load()
		if id <= last || g.last.CompareAndSwap(last, id) {
			return
		}
	}
}

func (g *IDGenerator) NextID() int64 {
	for {
		last := g.last.Load()
		next := g.now().UnixMilli()
		if next <= last {
			next = last + 1
		}
		if g.last.CompareAndSwap(last, next) {
			return next
		}
	}
}
