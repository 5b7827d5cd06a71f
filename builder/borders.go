// SPDX-License-Identifier: MIT
// Package: mosaic/builder
//
// borders.go — shared border segments of the picture.
//
// Segment layout (n = grid size, L = tile size, step = L-1):
//   • horizontal: row i·step, columns j·step … j·step+L-1, for i ∈ [0,n], j ∈ [0,n)
//   • vertical:   column j·step, rows i·step … i·step+L-1, for i ∈ [0,n), j ∈ [0,n]
//
// Endpoints sit on lattice points shared by up to four segments; only the
// L-2 middle pixels of a segment belong to it alone, so redrawing them never
// disturbs another segment.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mosaic/grid"
)

// segment is one tile edge inside the picture.
type segment struct {
	row, col   int
	horizontal bool
	length     int
}

// cell returns the picture coordinate of the k-th pixel of s.
func (s segment) cell(k int) (int, int) {
	if s.horizontal {
		return s.row, s.col + k
	}
	return s.row + k, s.col
}

func (s segment) read(pic grid.Grid) string {
	b := make([]byte, s.length)
	for k := range b {
		r, c := s.cell(k)
		b[k] = byte(pic[r][c])
	}
	return string(b)
}

// writeMiddle sets pixels 1…L-2 of s from the low bits of bits.
// Only used for segments with at most maxScanBits middle pixels.
func (s segment) writeMiddle(pic grid.Grid, bits int) {
	for k := 1; k < s.length-1; k++ {
		r, c := s.cell(k)
		if bits&(1<<(k-1)) != 0 {
			pic[r][c] = grid.Filled
		} else {
			pic[r][c] = grid.Empty
		}
	}
}

// drawMiddle sets pixels 1…L-2 of s to fair coin flips.
func (s segment) drawMiddle(pic grid.Grid, rng *rand.Rand) {
	for k := 1; k < s.length-1; k++ {
		r, c := s.cell(k)
		pic[r][c] = grid.Empty
		if rng.Intn(2) == 1 {
			pic[r][c] = grid.Filled
		}
	}
}

// segments lists every tile edge of cfg's picture, horizontal ones first.
func (cfg builderConfig) segments() []segment {
	n, l := cfg.gridSize, cfg.tileSize
	step := l - 1
	out := make([]segment, 0, 2*n*(n+1))
	for i := 0; i <= n; i++ {
		for j := 0; j < n; j++ {
			out = append(out, segment{row: i * step, col: j * step, horizontal: true, length: l})
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= n; j++ {
			out = append(out, segment{row: i * step, col: j * step, length: l})
		}
	}
	return out
}

// drawBorders redraws the middle of every segment until its
// orientation-free form is new and it is not a palindrome. A few random
// draws are tried first; short segments then fall back to scanning every
// middle from a random start.
func drawBorders(pic grid.Grid, segs []segment, rng *rand.Rand) error {
	seen := make(map[string]struct{}, len(segs))
	for i, s := range segs {
		if !placeSegment(pic, s, rng, seen) {
			return builderErrorf("borders", "%w: segment %d of %d", ErrBorderExhausted, i+1, len(segs))
		}
	}
	return nil
}

func placeSegment(pic grid.Grid, s segment, rng *rand.Rand, seen map[string]struct{}) bool {
	m := s.length - 2
	accept := func() bool {
		v := s.read(pic)
		rv := reverse(v)
		if v == rv {
			return false
		}
		key := min(v, rv)
		if _, used := seen[key]; used {
			return false
		}
		seen[key] = struct{}{}
		return true
	}

	for d := 0; d < segmentDraws; d++ {
		s.drawMiddle(pic, rng)
		if accept() {
			return true
		}
	}
	if m > maxScanBits {
		return false
	}
	total := 1 << m
	start := rng.Intn(total)
	for k := 0; k < total; k++ {
		s.writeMiddle(pic, (start+k)%total)
		if accept() {
			return true
		}
	}
	return false
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
