package codegen

import (
	"fmt"

	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
)

// hipDialect emits the ROCm counterpart of the CUDA barrier family via
// libhipcxx, which carries the same asynchronous barrier API under the
// hip:: namespace. Type names and prelude macros match the CUDA dialect.
type hipDialect struct{}

func init() {
	RegisterDialect(hipDialect{})
}

func (hipDialect) Name() string {
	return "hip"
}

func (hipDialect) ThreadIndex() string {
	return "threadIdxGlobal"
}

func (hipDialect) GroupExtent() string {
	return "blockDimGlobal"
}

func (hipDialect) ItemName(it ir.Item) string {
	return cppItemName(it)
}

func (hipDialect) InitUnitBarrier(barrier ir.Variable) string {
	return fmt.Sprintf(`
hip::barrier<hip::thread_scope_thread> %s;
init(&%s, 1);
`, barrier, barrier)
}

func (d hipDialect) ElectAndInit(barrier, elected ir.Variable) string {
	return fmt.Sprintf(`
__shared__ hip::barrier<hip::thread_scope_block> %s;
if (%s == %s) {
   init(&%s, %s);
}
`, barrier, d.ThreadIndex(), elected, barrier, d.GroupExtent())
}

func (hipDialect) MemCopyAsync(dst, src ir.Variable, bytes string, barrier ir.Variable) string {
	return fmt.Sprintf(`
hip::memcpy_async(%s, %s, %s, %s);
`, dst, src, bytes, barrier)
}

func (hipDialect) ArriveAndWait(barrier ir.Variable) string {
	return fmt.Sprintf(`
%s.arrive_and_wait();
`, barrier)
}
