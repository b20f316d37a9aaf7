// Package codegen lowers kernel IR operations into literal device code,
// parameterized by a target dialect.
package codegen

import (
	"fmt"

	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
)

// BarrierOp is one synchronization action of the barrier lifecycle.
// The operation set is closed: Init, MemCopyAsync and Wait.
type BarrierOp interface {
	isBarrierOp()
}

// Init declares and initializes a barrier object sized for its level's
// participant count.
type Init struct {
	Barrier ir.Variable
	Level   ir.BarrierLevel
}

// MemCopyAsync issues a non-blocking copy from Source to Destination,
// advancing the barrier's completion count. The byte count is computed
// from the source's item, since source and destination may have different
// views over the same element count.
type MemCopyAsync struct {
	Barrier     ir.Variable
	Source      ir.Variable
	Destination ir.Variable
}

// Wait blocks the calling thread until all copies and arrivals registered
// against the barrier have completed, then resets the barrier for reuse.
type Wait struct {
	Barrier ir.Variable
}

func (Init) isBarrierOp()         {}
func (MemCopyAsync) isBarrierOp() {}
func (Wait) isBarrierOp()         {}

// BarrierID returns the identity of the barrier instance the operation
// acts on. Panics if the referenced variable has no assigned identity;
// well-formed kernel bodies never produce such operations.
func BarrierID(op BarrierOp) ir.VarID {
	switch op := op.(type) {
	case Init:
		return op.Barrier.ID()
	case MemCopyAsync:
		return op.Barrier.ID()
	case Wait:
		return op.Barrier.ID()
	default:
		panic(fmt.Sprintf("codegen: unknown barrier operation %T", op))
	}
}

// Render produces the device-code fragment implementing op in the given
// dialect. Pure text production, no side effects.
func Render(op BarrierOp, d Dialect) string {
	switch op := op.(type) {
	case Init:
		switch op.Level.Scope() {
		case ir.ScopeUnit:
			return d.InitUnitBarrier(op.Barrier)
		case ir.ScopeCube:
			return d.ElectAndInit(op.Barrier, op.Level.Elected())
		default:
			panic(fmt.Sprintf("codegen: unknown barrier scope %d", op.Level.Scope()))
		}
	case MemCopyAsync:
		bytes := fmt.Sprintf("%s_length * sizeof(%s)", op.Source, d.ItemName(op.Source.Item()))
		return d.MemCopyAsync(op.Destination, op.Source, bytes, op.Barrier)
	case Wait:
		return d.ArriveAndWait(op.Barrier)
	default:
		panic(fmt.Sprintf("codegen: unknown barrier operation %T", op))
	}
}
