package ir

// Ident names which matmul operand a tensor view addresses.
type Ident int

// Matmul operands.
const (
	Lhs Ident = iota
	Rhs
	Out
)

// String returns a human-readable operand name.
func (id Ident) String() string {
	switch id {
	case Lhs:
		return "lhs"
	case Rhs:
		return "rhs"
	case Out:
		return "out"
	default:
		return "unknown"
	}
}

// MatrixLayout determines how a linear thread index maps to a 2-D offset
// within a tile. It is fixed per operand at kernel-configuration time.
type MatrixLayout int

// Supported layouts.
const (
	RowMajor MatrixLayout = iota
	ColMajor
)

// String returns a human-readable layout name.
func (l MatrixLayout) String() string {
	switch l {
	case RowMajor:
		return "row_major"
	case ColMajor:
		return "col_major"
	default:
		return "unknown"
	}
}
