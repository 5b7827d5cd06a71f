// SPDX-License-Identifier: MIT
// Package: mosaic/builder
//
// options.go — functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors PANIC on programmer errors (nil RNG, nil IDFn).
//   • Numeric ranges are checked by Generate and returned as errors, so
//     values read from flags or config files never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mosaic/pattern"
)

// Option customizes Generate by mutating a builderConfig before use.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithTileSize sets the side length L of every tile, border included.
func WithTileSize(l int) Option {
	return func(c *builderConfig) {
		c.tileSize = l
	}
}

// WithGridSize sets the number of tiles per side.
func WithGridSize(n int) Option {
	return func(c *builderConfig) {
		c.gridSize = n
	}
}

// WithFillRatio sets the probability that a background pixel is filled.
// Border pixels are drawn with probability one half regardless.
func WithFillRatio(p float64) Option {
	return func(c *builderConfig) {
		c.fill = p
	}
}

// WithPattern stamps count non-overlapping copies of p into the picture.
// WithPattern(p, 0) produces a puzzle without any occurrence of p.
func WithPattern(p pattern.Pattern, count int) Option {
	return func(c *builderConfig) {
		c.pattern = p
		c.copies = count
	}
}
