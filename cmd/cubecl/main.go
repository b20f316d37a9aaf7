// Package main provides the CubeCL Go code generator CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/AntiAnimeGeneral/cubecl/codegen"
	"github.com/AntiAnimeGeneral/cubecl/ir"
	"github.com/AntiAnimeGeneral/cubecl/matmul"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("CubeCL Go %s\n", version)
			return
		case "dialects":
			fmt.Println(strings.Join(codegen.AvailableDialects(), "\n"))
			return
		case "emit":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: cubecl emit <dialect>")
				os.Exit(1)
			}
			if err := emit(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "cubecl: %v\n", err)
				os.Exit(1)
			}
			return
		case "kernel":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: cubecl kernel <config.yaml>")
				os.Exit(1)
			}
			if err := kernel(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "cubecl: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("CubeCL Go - GPU Kernel Code Generation")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version             Show version")
	fmt.Println("  dialects            List registered code generation dialects")
	fmt.Println("  emit <dialect>      Print a barrier prefetch lifecycle in the given dialect")
	fmt.Println("  kernel <config>     Generate the WGSL matmul shader for a kernel config")
}

// emit prints the source fragments of a full barrier lifecycle: an
// elected-thread init, one async stage copy and the wait.
func emit(name string) error {
	d, err := codegen.GetDialect(name)
	if err != nil {
		return err
	}

	arena := ir.NewArena()
	barrier := arena.Declare(ir.KindBarrier, ir.NewItem(ir.Uint8, 1))
	source := arena.Declare(ir.KindGlobalMemory, ir.NewItem(ir.Float32, 4))
	stage := arena.Declare(ir.KindSharedMemory, ir.NewItem(ir.Float32, 4))

	ops := []codegen.BarrierOp{
		codegen.Init{Barrier: barrier, Level: ir.Cube(ir.Const(0))},
		codegen.MemCopyAsync{Barrier: barrier, Source: source, Destination: stage},
		codegen.Wait{Barrier: barrier},
	}
	for _, op := range ops {
		fmt.Print(codegen.Render(op, d))
	}
	return nil
}

// kernel loads a YAML kernel config, prints the generated WGSL shader
// and validates it by compiling to SPIR-V.
func kernel(path string) error {
	config, err := matmul.LoadKernelConfig(path)
	if err != nil {
		return err
	}

	shader := codegen.MatmulShader(config)
	fmt.Print(shader)

	words, err := codegen.CompileWGSL(shader)
	if err != nil {
		return fmt.Errorf("shader validation failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "validated: %d SPIR-V words\n", len(words))
	return nil
}
