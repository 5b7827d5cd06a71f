// SPDX-License-Identifier: MIT
// Package: mosaic/builder
//
// constants.go — named defaults and limits for Generate.

package builder

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

const (
	// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 20
	// DefaultTileSize matches the reference puzzle's 10×10 tiles.
	DefaultTileSize = 10
	// DefaultGridSize is the number of tiles per side.
	DefaultGridSize = 3
	// DefaultFillRatio is the probability that a picture pixel is filled.
	DefaultFillRatio = 0.45
	// DefaultCopies is the number of sea monsters stamped by default.
	DefaultCopies = 2
)

//-----------------------------------------------------------------------------
// Limits
//-----------------------------------------------------------------------------

const (
	// MinGridSize is the smallest square that has four distinct corners.
	MinGridSize = 2
	// MinTileSize leaves a 2×2 interior and two free pixels per border.
	MinTileSize = 4
	// MinProbability is the lower bound for the fill ratio, inclusive.
	MinProbability = 0.0
	// MaxProbability is the upper bound for the fill ratio, inclusive.
	MaxProbability = 1.0
)

// Random ids are drawn from [minRandomID, minRandomID+span) where span is
// at least idSpan and grows with the tile count.
const (
	minRandomID = 1000
	idSpan      = 9000
)

const (
	// segmentDraws bounds random redraws of one border before falling back
	// to an exhaustive scan.
	segmentDraws = 32
	// maxScanBits caps the exhaustive scan at 2^16 candidates per border.
	maxScanBits = 16
	// placementDraws bounds the random anchors tried per pattern copy.
	placementDraws = 1000
	// pictureAttempts bounds full redraws when the stamped pattern is
	// ambiguous or occurs by accident.
	pictureAttempts = 32
)
