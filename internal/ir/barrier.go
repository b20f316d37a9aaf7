package ir

// Scope is the participant extent of a barrier.
type Scope int

// Supported barrier scopes.
const (
	// ScopeUnit synchronizes exactly one logical thread, e.g. a prefetch
	// issued and waited on by the same thread.
	ScopeUnit Scope = iota
	// ScopeCube synchronizes all threads of the cooperative group.
	ScopeCube
)

// String returns a human-readable scope name.
func (s Scope) String() string {
	switch s {
	case ScopeUnit:
		return "unit"
	case ScopeCube:
		return "cube"
	default:
		return "unknown"
	}
}

// BarrierLevel describes who participates in a barrier. For ScopeCube the
// elected thread is the single thread responsible for initializing the
// group-shared barrier object; all other threads skip initialization but
// still arrive and wait.
type BarrierLevel struct {
	scope   Scope
	elected Variable
}

// Unit returns the single-thread barrier level.
func Unit() BarrierLevel {
	return BarrierLevel{scope: ScopeUnit}
}

// Cube returns the cooperative-group barrier level with the given elected
// thread index expression.
func Cube(elected Variable) BarrierLevel {
	if !elected.Defined() {
		panic("ir: cube barrier level requires a defined elected thread")
	}
	return BarrierLevel{scope: ScopeCube, elected: elected}
}

// Scope returns the barrier's participant extent.
func (l BarrierLevel) Scope() Scope {
	return l.scope
}

// Elected returns the elected thread index of a cube-level barrier.
// Panics for unit-level barriers.
func (l BarrierLevel) Elected() Variable {
	if l.scope != ScopeCube {
		panic("ir: unit barrier level has no elected thread")
	}
	return l.elected
}
