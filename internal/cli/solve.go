package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mosaic"
	"github.com/katalvlaran/mosaic/internal/config"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Reassemble a puzzle and print its corner product and roughness",
		Long: `Reads "Tile <id>:" blocks separated by blank lines from file, or from
stdin when no file is given, and prints the product of the four corner ids
followed by the roughness of the assembled picture.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
	f := cmd.Flags()
	f.String("format", config.OutputText, "output format: text or json")
	f.String("pattern", "", "file with pattern art, '#' marks required cells (default sea monster)")
	f.Bool("exhaustive", false, "fail when the pattern shows up in more than one orientation")
	f.Bool("validate", true, "check neighbour counts before assembling")
	return cmd
}

// report is the JSON document printed by solve --format json.
type report struct {
	RunID         string  `json:"run_id"`
	CornerProduct int64   `json:"corner_product"`
	Roughness     int     `json:"roughness"`
	Matches       int     `json:"matches"`
	Orientation   string  `json:"orientation"`
	Tiles         int     `json:"tiles"`
	Side          int     `json:"side"`
	Layout        [][]int `json:"layout"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, map[string]string{
		"output.format":     "format",
		"puzzle.pattern":    "pattern",
		"puzzle.exhaustive": "exhaustive",
		"puzzle.validate":   "validate",
	})
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Sync() }()

	input := s.cfg.Puzzle.Input
	if len(args) == 1 {
		input = args[0]
	}
	text, err := readInput(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}

	opts := []mosaic.Option{mosaic.WithLogger(s.log)}
	if s.cfg.Puzzle.Pattern != "" {
		p, err := loadPattern(s.cfg.Puzzle.Pattern)
		if err != nil {
			return fmt.Errorf("failed to load pattern: %w", err)
		}
		opts = append(opts, mosaic.WithPattern(p))
	}
	if s.cfg.Puzzle.Exhaustive {
		opts = append(opts, mosaic.WithExhaustiveSearch())
	}
	if !s.cfg.Puzzle.Validate {
		opts = append(opts, mosaic.WithoutValidation())
	}

	start := time.Now()
	res, err := mosaic.Solve(mosaic.SplitBlocks(text), opts...)
	if err != nil {
		return err
	}
	s.log.Info("puzzle solved",
		zap.Int("tiles", res.Tiles),
		zap.Int64("corner_product", res.CornerProduct),
		zap.Int("roughness", res.Roughness),
		zap.Int("matches", res.Matches),
		zap.Duration("execution_time", time.Since(start)),
	)

	return writeResult(cmd.OutOrStdout(), s.cfg.Output.Format, s.runID, res)
}

func writeResult(w io.Writer, format, runID string, res *mosaic.Result) error {
	if format != config.OutputJSON {
		_, err := fmt.Fprintf(w, "%d\n%d\n", res.CornerProduct, res.Roughness)
		return err
	}
	data, err := sonic.ConfigStd.MarshalIndent(report{
		RunID:         runID,
		CornerProduct: res.CornerProduct,
		Roughness:     res.Roughness,
		Matches:       res.Matches,
		Orientation:   res.Orientation.String(),
		Tiles:         res.Tiles,
		Side:          res.Side,
		Layout:        res.Layout,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
