// Package matmul provides the windowed tensor-view abstraction used by
// generated matmul kernel bodies, together with the tiling configuration
// those kernels are lowered against.
package matmul

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
)

// StageDim holds the tile dimensions of one matmul operand stage.
type StageDim struct {
	TileSizeX int `yaml:"tile_size_x"`
	TileSizeY int `yaml:"tile_size_y"`
}

// NumUnits returns the number of units that cooperate on one tile.
func (d StageDim) NumUnits() int {
	return d.TileSizeX * d.TileSizeY
}

// Config is the capability the tensor view consumes from the kernel
// configuration layer: per-operand line width, tile geometry and layout,
// plus the comptime bounds-check flags.
type Config interface {
	LineSize(ident ir.Ident) int
	StageDim(ident ir.Ident) StageDim
	Layout(ident ir.Ident) ir.MatrixLayout
	CheckMBounds() bool
	CheckNBounds() bool
}

// OperandConfig is the per-operand geometry of a kernel configuration.
type OperandConfig struct {
	LineSize int      `yaml:"line_size"`
	Tile     StageDim `yaml:"tile"`
	Layout   string   `yaml:"layout"`
}

// KernelConfig is a concrete Config fixed at kernel-configuration time.
// It can be populated directly or loaded from YAML.
type KernelConfig struct {
	Lhs    OperandConfig `yaml:"lhs"`
	Rhs    OperandConfig `yaml:"rhs"`
	Out    OperandConfig `yaml:"out"`
	CheckM bool          `yaml:"check_m_bounds"`
	CheckN bool          `yaml:"check_n_bounds"`
}

// LoadKernelConfig reads and validates a kernel configuration from a YAML
// file.
func LoadKernelConfig(path string) (*KernelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read kernel config: %w", err)
	}

	var cfg KernelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse kernel config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid kernel config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks operand geometry and layout names.
func (c *KernelConfig) Validate() error {
	for _, ident := range []ir.Ident{ir.Lhs, ir.Rhs, ir.Out} {
		op := c.operand(ident)
		if op.LineSize < 1 {
			return fmt.Errorf("%s: line size %d (must be >= 1)", ident, op.LineSize)
		}
		if op.Tile.TileSizeX < 1 || op.Tile.TileSizeY < 1 {
			return fmt.Errorf("%s: tile %dx%d (must be >= 1x1)", ident, op.Tile.TileSizeX, op.Tile.TileSizeY)
		}
		if _, err := parseLayout(op.Layout); err != nil {
			return fmt.Errorf("%s: %w", ident, err)
		}
	}
	return nil
}

// LineSize returns the line width of the given operand.
func (c *KernelConfig) LineSize(ident ir.Ident) int {
	return c.operand(ident).LineSize
}

// StageDim returns the tile dimensions of the given operand.
func (c *KernelConfig) StageDim(ident ir.Ident) StageDim {
	return c.operand(ident).Tile
}

// Layout returns the matrix layout of the given operand.
// Panics on an unvalidated layout name; configurations coming from YAML
// are validated at load time.
func (c *KernelConfig) Layout(ident ir.Ident) ir.MatrixLayout {
	layout, err := parseLayout(c.operand(ident).Layout)
	if err != nil {
		panic(fmt.Sprintf("matmul: %s operand: %v", ident, err))
	}
	return layout
}

// CheckMBounds reports whether stores check the M (row) bound.
func (c *KernelConfig) CheckMBounds() bool {
	return c.CheckM
}

// CheckNBounds reports whether stores check the N (column) bound.
func (c *KernelConfig) CheckNBounds() bool {
	return c.CheckN
}

func (c *KernelConfig) operand(ident ir.Ident) *OperandConfig {
	switch ident {
	case ir.Lhs:
		return &c.Lhs
	case ir.Rhs:
		return &c.Rhs
	case ir.Out:
		return &c.Out
	default:
		panic(fmt.Sprintf("matmul: unknown operand %d", ident))
	}
}

// parseLayout maps a configuration layout name to a MatrixLayout.
// The empty string defaults to row-major.
func parseLayout(name string) (ir.MatrixLayout, error) {
	switch name {
	case "", "row_major":
		return ir.RowMajor, nil
	case "col_major":
		return ir.ColMajor, nil
	default:
		return ir.RowMajor, fmt.Errorf("unknown layout %q", name)
	}
}
