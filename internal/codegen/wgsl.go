package codegen

import (
	"fmt"
	"strings"

	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
	"github.com/AntiAnimeGeneral/cubecl/internal/matmul"
)

// MatmulShader generates the WGSL compute shader for a batched matmul
// fixed by the given kernel configuration: one invocation per output
// element, a workgroup per output tile, bounds guards driven by the
// comptime check flags and operand indexing driven by the configured
// layouts. Matrix extents arrive at dispatch time through a uniform.
func MatmulShader(config matmul.Config) string {
	tile := config.StageDim(ir.Out)

	var sb strings.Builder
	sb.WriteString(`@group(0) @binding(0) var<storage, read> lhs: array<f32>;
@group(0) @binding(1) var<storage, read> rhs: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    m: u32,
    k: u32,
    n: u32,
    batches: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

`)

	fmt.Fprintf(&sb, "@compute @workgroup_size(%d, %d, 1)\n", tile.TileSizeY, tile.TileSizeX)
	sb.WriteString(`fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let row = global_id.y;
    let col = global_id.x;
    let batch = global_id.z;
`)

	// Tiles near the matrix boundary may extend past the logical shape.
	switch {
	case config.CheckMBounds() && config.CheckNBounds():
		sb.WriteString("    if (row >= params.m || col >= params.n) {\n        return;\n    }\n")
	case config.CheckMBounds():
		sb.WriteString("    if (row >= params.m) {\n        return;\n    }\n")
	case config.CheckNBounds():
		sb.WriteString("    if (col >= params.n) {\n        return;\n    }\n")
	}

	sb.WriteString(`
    let lhs_offset = batch * params.m * params.k;
    let rhs_offset = batch * params.k * params.n;

    var sum: f32 = 0.0;
    for (var kk: u32 = 0u; kk < params.k; kk = kk + 1u) {
`)
	fmt.Fprintf(&sb, "        let a = lhs[lhs_offset + %s];\n", operandIndex(config.Layout(ir.Lhs), "row", "kk", "params.m", "params.k"))
	fmt.Fprintf(&sb, "        let b = rhs[rhs_offset + %s];\n", operandIndex(config.Layout(ir.Rhs), "kk", "col", "params.k", "params.n"))
	sb.WriteString(`        sum = sum + a * b;
    }

    result[batch * params.m * params.n + row * params.n + col] = sum;
}
`)

	return sb.String()
}

// operandIndex spells the linear index of element (x, y) of a rows-by-cols
// operand in the given layout.
func operandIndex(layout ir.MatrixLayout, x, y, rows, cols string) string {
	if layout == ir.ColMajor {
		return fmt.Sprintf("%s * %s + %s", y, rows, x)
	}
	return fmt.Sprintf("%s * %s + %s", x, cols, y)
}
