// Package config holds the knobs that tune how the rest of the compiler
// behaves, independent of any one pipeline stage: how many source lines
// a program may hold, how many fixpoint passes the optimizer is allowed
// before it gives up, and whether REM comments should survive into the
// lowered program for tooling that wants them. Options is built with the
// functional-options pattern, the same shape internal/tac uses for its
// Lowerer.
package config

// Options configures a compilation run end to end.
type Options struct {
	maxLines           int
	maxOptimizerPasses int
	preserveRem        bool
}

// Option is a function that configures Options.
// Options are applied during construction via New().
type Option func(*Options)

// defaultMaxLines bounds how many source text lines a program may hold;
// the CLI compares it against the file's line count before parsing, so a
// malformed or generated program with millions of lines fails fast with
// a clear diagnostic instead of exhausting memory during parsing.
const defaultMaxLines = 10000

// WithMaxLines overrides the maximum number of source lines a program
// may declare. A value of 0 disables the limit.
func WithMaxLines(n int) Option {
	return func(o *Options) {
		o.maxLines = n
	}
}

// WithMaxOptimizerPasses overrides the fixpoint iteration cap passed to
// cfg.Optimizer. A value of 0 falls back to the optimizer's own default.
func WithMaxOptimizerPasses(n int) Option {
	return func(o *Options) {
		o.maxOptimizerPasses = n
	}
}

// WithPreserveRem controls whether REM statements are kept as no-op
// markers in the lowered program (useful for tools that want to
// correlate TAC back to commented source) or dropped entirely, the
// default.
func WithPreserveRem(preserve bool) Option {
	return func(o *Options) {
		o.preserveRem = preserve
	}
}

// New builds Options from the given functional options, defaulted as a
// fresh compile of a well-formed program would want.
//
// Example:
//
//	opts := config.New(config.WithMaxOptimizerPasses(8))
func New(opts ...Option) *Options {
	o := &Options{
		maxLines:           defaultMaxLines,
		maxOptimizerPasses: 0,
		preserveRem:        false,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// MaxLines returns the configured maximum line count, or 0 if unbounded.
func (o *Options) MaxLines() int { return o.maxLines }

// MaxOptimizerPasses returns the configured optimizer pass cap, or 0 to
// mean "use the optimizer's own default".
func (o *Options) MaxOptimizerPasses() int { return o.maxOptimizerPasses }

// PreserveRem reports whether REM statements should survive lowering.
func (o *Options) PreserveRem() bool { return o.preserveRem }
