// SPDX-License-Identifier: MIT
// Package: mosaic/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng       = rand.New(rand.NewSource(DefaultSeed))
//   • tileSize  = DefaultTileSize
//   • gridSize  = DefaultGridSize
//   • fill      = DefaultFillRatio
//   • pattern   = pattern.SeaMonster(), DefaultCopies copies
//   • idFn      = nil (random distinct 4-digit ids)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mosaic/pattern"
)

// builderConfig aggregates all knobs used by Generate.
type builderConfig struct {
	rng *rand.Rand

	tileSize int
	gridSize int
	fill     float64

	pattern pattern.Pattern
	copies  int

	// idFn maps a row-major tile index to its id; nil means random ids.
	idFn IDFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order; later options override earlier ones.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		tileSize: DefaultTileSize,
		gridSize: DefaultGridSize,
		fill:     DefaultFillRatio,
		pattern:  pattern.SeaMonster(),
		copies:   DefaultCopies,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// pictureSide is the side of the shared-border picture: n(L-1)+1.
func (cfg builderConfig) pictureSide() int {
	return cfg.gridSize*(cfg.tileSize-1) + 1
}

// imageSide is the side of the stitched interior image: n(L-2).
func (cfg builderConfig) imageSide() int {
	return cfg.gridSize * (cfg.tileSize - 2)
}
