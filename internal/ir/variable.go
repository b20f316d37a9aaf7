package ir

import "fmt"

// VarKind classifies declared kernel variables. The kind determines the
// naming prefix used in generated code.
type VarKind int

// Supported variable kinds.
const (
	KindBarrier VarKind = iota
	KindGlobalMemory
	KindSharedMemory
	KindLocal
	KindConst
)

// prefix returns the generated-code naming prefix for the kind.
func (k VarKind) prefix() string {
	switch k {
	case KindBarrier:
		return "barrier"
	case KindGlobalMemory:
		return "buffer"
	case KindSharedMemory:
		return "shared"
	case KindLocal:
		return "local"
	default:
		return "var"
	}
}

// VarID is the stable numeric identity of a declared variable. Identities
// are assigned once by an Arena and never reused while the kernel body is
// alive.
type VarID uint32

// Variable is an opaque handle to a declared kernel variable. The zero
// value is undeclared; well-formed kernel bodies only ever reference
// variables produced by Arena.Declare or Const.
type Variable struct {
	kind     VarKind
	id       VarID
	item     Item
	value    uint32 // immediate value, KindConst only
	declared bool
}

// Const returns an immediate unsigned constant. Constants carry no
// identity; they are usable as elected thread indices and other literal
// operands in generated code.
func Const(v uint32) Variable {
	return Variable{kind: KindConst, value: v, declared: true}
}

// Kind returns the variable's kind.
func (v Variable) Kind() VarKind {
	return v.kind
}

// Item returns the variable's element item.
func (v Variable) Item() Item {
	return v.item
}

// Defined reports whether the variable was produced by an Arena or Const.
func (v Variable) Defined() bool {
	return v.declared
}

// ID returns the variable's assigned identity.
// Panics if the variable has no identity (undeclared or an immediate
// constant); this is a compiler-internal invariant violation, never a
// runtime condition of well-formed kernels.
func (v Variable) ID() VarID {
	if !v.declared || v.kind == KindConst {
		panic(fmt.Sprintf("ir: variable %s has no assigned identity", v))
	}
	return v.id
}

// String returns the variable's name as spelled in generated code.
func (v Variable) String() string {
	if !v.declared {
		return "<undeclared>"
	}
	if v.kind == KindConst {
		return fmt.Sprintf("%d", v.value)
	}
	return fmt.Sprintf("%s_%d", v.kind.prefix(), v.id)
}

// Arena assigns identities to declared kernel variables. One arena lives
// for the duration of one kernel body lowering.
type Arena struct {
	vars []Variable
}

// NewArena creates an empty variable arena.
func NewArena() *Arena {
	return &Arena{}
}

// Declare allocates the next identity for a variable of the given kind and
// item.
func (a *Arena) Declare(kind VarKind, item Item) Variable {
	if kind == KindConst {
		panic("ir: constants are not declared in an arena")
	}
	v := Variable{
		kind:     kind,
		id:       VarID(len(a.vars)), //nolint:gosec // kernel bodies stay far below 2^32 variables
		item:     item,
		declared: true,
	}
	a.vars = append(a.vars, v)
	return v
}

// Var returns the declared variable with the given identity.
func (a *Arena) Var(id VarID) (Variable, bool) {
	if int(id) >= len(a.vars) {
		return Variable{}, false
	}
	return a.vars[id], true
}

// Len returns the number of declared variables.
func (a *Arena) Len() int {
	return len(a.vars)
}
