package codegen

import (
	"fmt"

	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
)

// cudaDialect emits the CUDA C++ asynchronous barrier API from libcu++.
// threadIdxGlobal and blockDimGlobal are flattening macros declared in the
// kernel prelude.
type cudaDialect struct{}

func init() {
	RegisterDialect(cudaDialect{})
}

func (cudaDialect) Name() string {
	return "cuda"
}

func (cudaDialect) ThreadIndex() string {
	return "threadIdxGlobal"
}

func (cudaDialect) GroupExtent() string {
	return "blockDimGlobal"
}

func (cudaDialect) ItemName(it ir.Item) string {
	return cppItemName(it)
}

func (cudaDialect) InitUnitBarrier(barrier ir.Variable) string {
	return fmt.Sprintf(`
cuda::barrier<cuda::thread_scope_thread> %s;
init(&%s, 1);
`, barrier, barrier)
}

func (d cudaDialect) ElectAndInit(barrier, elected ir.Variable) string {
	return fmt.Sprintf(`
__shared__ cuda::barrier<cuda::thread_scope_block> %s;
if (%s == %s) {
   init(&%s, %s);
}
`, barrier, d.ThreadIndex(), elected, barrier, d.GroupExtent())
}

func (cudaDialect) MemCopyAsync(dst, src ir.Variable, bytes string, barrier ir.Variable) string {
	return fmt.Sprintf(`
cuda::memcpy_async(%s, %s, %s, %s);
`, dst, src, bytes, barrier)
}

func (cudaDialect) ArriveAndWait(barrier ir.Variable) string {
	return fmt.Sprintf(`
%s.arrive_and_wait();
`, barrier)
}

// cppItemName spells an item as a C++ scalar or builtin vector type.
// CUDA and HIP share these type names.
func cppItemName(it ir.Item) string {
	scalar, vector := "", ""
	switch it.Elem {
	case ir.Float32:
		scalar, vector = "float", "float"
	case ir.Float64:
		scalar, vector = "double", "double"
	case ir.Int32:
		scalar, vector = "int", "int"
	case ir.Int64:
		scalar, vector = "long long", "longlong"
	case ir.Uint8:
		scalar, vector = "unsigned char", "uchar"
	default:
		panic(fmt.Sprintf("codegen: unknown element type %d", it.Elem))
	}

	if it.LineSize() <= 1 {
		return scalar
	}
	return fmt.Sprintf("%s%d", vector, it.LineSize())
}
