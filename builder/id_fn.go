// SPDX-License-Identifier: MIT
// Package: mosaic/builder
//
// id_fn.go — tile id schemes for Generate.

package builder

import "fmt"

// IDFn generates a tile id from the tile's zero-based row-major position in
// the unscrambled picture. It must be pure and return distinct positive ids
// for distinct indices; Generate rejects schemes that do not.
type IDFn func(idx int) int

// SequentialIDFn returns base+idx, e.g. base 1 → 1, 2, 3, …
// Panics on base < 1, which could yield a non-positive id.
// Complexity: O(1).
func SequentialIDFn(base int) IDFn {
	if base < 1 {
		panic(fmt.Sprintf("SequentialIDFn: base must be ≥ 1, got %d", base))
	}
	return func(idx int) int {
		return base + idx
	}
}

// WithIDScheme sets a deterministic id scheme. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithSequentialIDs numbers tiles base, base+1, … in picture order.
func WithSequentialIDs(base int) Option {
	return WithIDScheme(SequentialIDFn(base))
}

// WithRandomIDs restores the default random 4-digit ids.
func WithRandomIDs() Option {
	return func(c *builderConfig) {
		c.idFn = nil
	}
}

// assignIDs returns one id per tile index. Random ids are drawn without
// replacement from [minRandomID, minRandomID+span).
func (cfg builderConfig) assignIDs(count int) ([]int, error) {
	ids := make([]int, count)
	if cfg.idFn == nil {
		span := max(idSpan, 4*count)
		for i, v := range cfg.rng.Perm(span)[:count] {
			ids[i] = minRandomID + v
		}
		return ids, nil
	}

	seen := make(map[int]struct{}, count)
	for i := range ids {
		id := cfg.idFn(i)
		if id <= 0 {
			return nil, fmt.Errorf("%w: id scheme gave %d for tile %d", ErrOptionViolation, id, i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: id scheme repeats %d at tile %d", ErrOptionViolation, id, i)
		}
		seen[id] = struct{}{}
		ids[i] = id
	}
	return ids, nil
}
