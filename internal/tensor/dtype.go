// Package tensor provides the strided, line-addressed buffers that generated
// matmul kernels read and write through tensor views.
package tensor

import "github.com/AntiAnimeGeneral/cubecl/internal/ir"

// DType is a constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// inferElemType infers the runtime element type from a generic type T.
func inferElemType[T DType](dummy T) ir.ElemType {
	switch any(dummy).(type) {
	case float32:
		return ir.Float32
	case float64:
		return ir.Float64
	case int32:
		return ir.Int32
	case int64:
		return ir.Int64
	case uint8:
		return ir.Uint8
	default:
		panic("unsupported type")
	}
}
