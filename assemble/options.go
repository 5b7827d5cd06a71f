package assemble

import "go.uber.org/zap"

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger routes placement progress to l at debug level.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.log = l
		}
	}
}
