package cpu

import (
	"fmt"
	"sync"
)

// Group is a simulated cooperative group: a fixed number of lanes that
// run one kernel function each and synchronize through shared barriers.
type Group struct {
	size int

	mu       sync.Mutex
	barriers map[string]*Barrier
}

// NewGroup creates a cooperative group with the given lane count.
func NewGroup(size int) *Group {
	if size < 1 {
		panic(fmt.Sprintf("cpu: group size %d (must be >= 1)", size))
	}
	return &Group{size: size, barriers: make(map[string]*Barrier)}
}

// Size returns the number of lanes in the group.
func (g *Group) Size() int {
	return g.size
}

// Barrier returns the group-wide barrier registered under name, creating
// and initializing it on first use. Creation happens exactly once per
// name regardless of how many lanes race here, the direct-execution
// equivalent of electing a single thread to initialize shared storage.
func (g *Group) Barrier(name string) *Barrier {
	g.mu.Lock()
	defer g.mu.Unlock()

	b, ok := g.barriers[name]
	if !ok {
		b = NewBarrier(g.size)
		g.barriers[name] = b
	}
	return b
}

// Launch runs kernel on every lane of the group and blocks until all
// lanes return.
func (g *Group) Launch(kernel func(unitID int)) {
	var wg sync.WaitGroup
	for lane := 0; lane < g.size; lane++ {
		wg.Add(1)
		go func(unitID int) {
			defer wg.Done()
			kernel(unitID)
		}(lane)
	}
	wg.Wait()
}
