// Package builder provides validation helpers for the resolved
// configuration. Each returns a sentinel-wrapped error when its
// precondition is violated.
package builder

import "fmt"

// validateMin ensures got ≥ min, wrapping sentinel on failure.
// Complexity: O(1).
func validateMin(sentinel error, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%w: %s must be ≥ %d, got %d", sentinel, name, min, got)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%w: must be in [%.1f,%.1f], got %f", ErrInvalidProbability, MinProbability, MaxProbability, p)
	}

	return nil
}

// validate checks every numeric knob of cfg in a fixed priority order:
// sizes first, then probability, then pattern copies.
func (cfg builderConfig) validate() error {
	if err := validateMin(ErrTooFewTiles, "grid size", cfg.gridSize, MinGridSize); err != nil {
		return err
	}
	if err := validateMin(ErrTileTooSmall, "tile size", cfg.tileSize, MinTileSize); err != nil {
		return err
	}
	if err := validateProbability(cfg.fill); err != nil {
		return err
	}
	if err := validateMin(ErrOptionViolation, "pattern copies", cfg.copies, 0); err != nil {
		return err
	}
	if cfg.copies > 0 && cfg.pattern.Len() == 0 {
		return fmt.Errorf("%w: %d copies of an empty pattern", ErrOptionViolation, cfg.copies)
	}

	return nil
}
