package mosaic

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/mosaic/pattern"
)

// Option configures Solve.
type Option func(*options)

type options struct {
	pattern    pattern.Pattern
	exhaustive bool
	validate   bool
	log        *zap.Logger
}

func defaultOptions() options {
	return options{
		pattern:  pattern.SeaMonster(),
		validate: true,
		log:      zap.NewNop(),
	}
}

// WithPattern searches for p instead of the sea monster.
func WithPattern(p pattern.Pattern) Option {
	return func(o *options) { o.pattern = p }
}

// WithExhaustiveSearch scans all eight orientations of the picture and
// fails with pattern.ErrAmbiguous if more than one contains the pattern.
func WithExhaustiveSearch() Option {
	return func(o *options) { o.exhaustive = true }
}

// WithoutValidation skips the neighbour-count histogram check. A
// disconnected or non-square input is still rejected by the assembler.
func WithoutValidation() Option {
	return func(o *options) { o.validate = false }
}

// WithLogger logs pipeline stages to l at debug level. A nil logger is
// ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
