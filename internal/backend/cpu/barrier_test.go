package cpu

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitBarrierPrefetch(t *testing.T) {
	// Single-participant barrier: issue an async copy, wait on it, and
	// the data is visible. This is the prefetch pattern of a unit-level
	// device barrier.
	src := []byte{1, 2, 3, 4}
	dst := make([]byte, 4)

	b := NewBarrier(1)
	b.MemCopyAsync(dst, src)
	b.ArriveAndWait()

	assert.Equal(t, src, dst)
}

func TestBarrierIsReusableAcrossPhases(t *testing.T) {
	b := NewBarrier(1)

	for round := 0; round < 3; round++ {
		src := []byte{byte(round), byte(round + 1)}
		dst := make([]byte, 2)
		b.MemCopyAsync(dst, src)
		b.ArriveAndWait()
		assert.Equal(t, src, dst, "round %d", round)
	}
}

func TestGroupBarrierOrdersPhases(t *testing.T) {
	// No lane may enter phase 2 while another is still in phase 1.
	const lanes = 8
	group := NewGroup(lanes)

	var inPhase1 atomic.Int32
	var violations atomic.Int32

	group.Launch(func(unitID int) {
		b := group.Barrier("sync")

		inPhase1.Add(1)
		b.ArriveAndWait()

		// All lanes must have finished phase 1 by now.
		if inPhase1.Load() != lanes {
			violations.Add(1)
		}
		b.ArriveAndWait()
	})

	assert.Zero(t, violations.Load())
}

func TestGroupBarrierMakesCopiesVisibleToAllLanes(t *testing.T) {
	const lanes = 4
	group := NewGroup(lanes)

	src := []byte{10, 20, 30, 40}
	shared := make([]byte, 4)
	var misses atomic.Int32

	group.Launch(func(unitID int) {
		b := group.Barrier("copy")

		// One lane issues the transfer; every lane waits on it.
		if unitID == 0 {
			b.MemCopyAsync(shared, src)
		}
		b.ArriveAndWait()

		for i := range src {
			if shared[i] != src[i] {
				misses.Add(1)
			}
		}
	})

	assert.Zero(t, misses.Load(), "copy must be visible to all lanes after the wait")
}

func TestGroupBarrierCreatedOncePerName(t *testing.T) {
	group := NewGroup(4)

	seen := make([]*Barrier, 4)
	group.Launch(func(unitID int) {
		seen[unitID] = group.Barrier("b")
	})

	for lane := 1; lane < 4; lane++ {
		assert.Same(t, seen[0], seen[lane], "lane %d got a different barrier", lane)
	}
	assert.NotSame(t, group.Barrier("b"), group.Barrier("other"))
}

func TestNewBarrierRejectsZeroParticipants(t *testing.T) {
	require.Panics(t, func() {
		NewBarrier(0)
	})
}
