// Package cpu implements the direct-execution backend: cooperative groups
// simulated with goroutines, and barriers carrying the same observable
// ordering guarantees as the rendered device code.
package cpu

import (
	"fmt"
	"sync"
)

// Barrier synchronizes the lanes of a simulated cooperative group. It
// mirrors the device barrier lifecycle: initialized once with a fixed
// participant count, asynchronous copies registered against it, and
// arrive-and-wait advancing all participants to the next phase together.
type Barrier struct {
	mu           sync.Mutex
	cond         *sync.Cond
	participants int
	arrived      int
	copies       int // outstanding async copies in the current phase
	phase        uint64
}

// NewBarrier initializes a barrier for the given participant count.
func NewBarrier(participants int) *Barrier {
	if participants < 1 {
		panic(fmt.Sprintf("cpu: barrier participant count %d (must be >= 1)", participants))
	}
	b := &Barrier{participants: participants}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// MemCopyAsync copies src into dst without blocking the calling lane.
// The transfer's completion is observable only through a subsequent
// ArriveAndWait on the same barrier.
func (b *Barrier) MemCopyAsync(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("cpu: async copy of %d bytes into %d-byte destination", len(src), len(dst)))
	}

	b.mu.Lock()
	b.copies++
	b.mu.Unlock()

	go func() {
		copy(dst, src)
		b.mu.Lock()
		b.copies--
		b.maybeAdvanceLocked()
		b.mu.Unlock()
	}()
}

// ArriveAndWait blocks the calling lane until all participants have
// arrived and all copies registered in the current phase have completed,
// then resets the barrier for reuse. After it returns, every completed
// copy is visible to every participating lane.
func (b *Barrier) ArriveAndWait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	phase := b.phase
	b.arrived++
	b.maybeAdvanceLocked()
	for b.phase == phase {
		b.cond.Wait()
	}
}

// maybeAdvanceLocked moves the barrier to the next phase once all
// arrivals and copies of the current phase are satisfied.
func (b *Barrier) maybeAdvanceLocked() {
	if b.arrived == b.participants && b.copies == 0 {
		b.arrived = 0
		b.phase++
		b.cond.Broadcast()
	}
}
