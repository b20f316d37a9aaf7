package codegen

import (
	"fmt"
	"sort"
	"sync"

	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
)

// Dialect renders target-specific device code fragments for the barrier
// operation family. One implementation exists per target.
type Dialect interface {
	// Name returns the dialect's registry name.
	Name() string
	// ItemName returns the target spelling of an item's type.
	ItemName(it ir.Item) string
	// ThreadIndex returns the expression for the calling thread's
	// flattened index within the cooperative group.
	ThreadIndex() string
	// GroupExtent returns the expression for the total thread count of
	// the cooperative group.
	GroupExtent() string

	// InitUnitBarrier declares and initializes a single-participant
	// barrier owned by the calling thread.
	InitUnitBarrier(barrier ir.Variable) string
	// ElectAndInit declares a barrier in group-shared storage and guards
	// its initialization so only the elected thread performs it, sized to
	// the full group extent. Targets with a native first-lane primitive
	// may substitute their own elision strategy.
	ElectAndInit(barrier, elected ir.Variable) string
	// MemCopyAsync issues a copy of the given byte count from src to dst,
	// registering the transfer against the barrier.
	MemCopyAsync(dst, src ir.Variable, bytes string, barrier ir.Variable) string
	// ArriveAndWait suspends the calling thread until all arrivals and
	// copies against the barrier are satisfied, then resets its phase.
	ArriveAndWait(barrier ir.Variable) string
}

// registry holds registered dialects.
var (
	registryMu sync.RWMutex
	dialects   = make(map[string]Dialect)
)

// RegisterDialect registers a dialect under its name. This is typically
// called from init() functions in dialect files. Registering the same
// name twice replaces the earlier dialect.
func RegisterDialect(d Dialect) {
	registryMu.Lock()
	defer registryMu.Unlock()
	dialects[d.Name()] = d
}

// GetDialect returns the dialect registered under name.
func GetDialect(name string) (Dialect, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("codegen: unknown dialect %q", name)
	}
	return d, nil
}

// AvailableDialects returns the sorted names of registered dialects.
func AvailableDialects() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
