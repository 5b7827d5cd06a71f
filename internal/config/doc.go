// Package config loads the mosaic CLI configuration.
//
// Values are resolved in this order, highest first:
//
//  1. command-line flags that were set explicitly
//  2. environment variables, prefixed with MOSAIC_ (e.g. MOSAIC_LOG_LEVEL)
//  3. a .env file in the configuration directory
//  4. the `default` struct tags below
//
// Nested keys map to environment names by replacing dots with
// underscores: puzzle.exhaustive becomes MOSAIC_PUZZLE_EXHAUSTIVE.
package config
