package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mosaic/builder"
	"github.com/katalvlaran/mosaic/pattern"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random puzzle with a known answer",
		Long: `Draws a random picture, stamps pattern copies into it, cuts it into
tiles and prints them shuffled, rotated and flipped in the format solve
reads. With --answer the expected results go to stderr.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
	f := cmd.Flags()
	f.Int64("seed", 0, "generator seed (0 picks one)")
	f.Int("grid", builder.DefaultGridSize, "tiles per side")
	f.Int("tile", builder.DefaultTileSize, "tile side in pixels")
	f.Float64("fill", builder.DefaultFillRatio, "probability that a background pixel is filled")
	f.Int("copies", builder.DefaultCopies, "pattern copies to stamp")
	f.String("pattern", "", "file with pattern art (default sea monster)")
	f.Bool("answer", false, "print the expected corner product and roughness to stderr")
	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd, map[string]string{
		"generate.seed":      "seed",
		"generate.grid_size": "grid",
		"generate.tile_size": "tile",
		"generate.fill":      "fill",
		"generate.copies":    "copies",
		"puzzle.pattern":     "pattern",
	})
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Sync() }()

	gc := s.cfg.Generate
	seed := gc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p := pattern.SeaMonster()
	if s.cfg.Puzzle.Pattern != "" {
		if p, err = loadPattern(s.cfg.Puzzle.Pattern); err != nil {
			return fmt.Errorf("failed to load pattern: %w", err)
		}
	}

	puzzle, err := builder.Generate(
		builder.WithSeed(seed),
		builder.WithGridSize(gc.GridSize),
		builder.WithTileSize(gc.TileSize),
		builder.WithFillRatio(gc.Fill),
		builder.WithPattern(p, gc.Copies),
	)
	if err != nil {
		return err
	}
	s.log.Info("puzzle generated",
		zap.Int64("seed", seed),
		zap.Int("tiles", len(puzzle.Blocks)),
		zap.String("pattern", p.Name()),
		zap.Int("copies", puzzle.Matches),
	)

	if _, err := fmt.Fprint(cmd.OutOrStdout(), puzzle.Text()); err != nil {
		return err
	}
	if answer, _ := cmd.Flags().GetBool("answer"); answer {
		_, err := fmt.Fprintf(cmd.ErrOrStderr(), "seed: %d\ncorner product: %d\nroughness: %d\n",
			seed, puzzle.CornerProduct, puzzle.Roughness)
		return err
	}
	return nil
}
