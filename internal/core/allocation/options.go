package allocation

import "github.com/zeusync/spawnkit/internal/core/observability/log"

// DefaultMaxRoll bounds the rounds of an allocation when no cap is given.
const DefaultMaxRoll = 100

type Options struct {
	NoDuplicate bool
	MaxRoll     int
	Logger      log.Log
}

type Option func(*Options)

// WithNoDuplicate removes a chosen value, and every candidate equal to it,
// from later rounds.
func WithNoDuplicate(noDuplicate bool) Option {
	return func(o *Options) {
		o.NoDuplicate = noDuplicate
	}
}

// WithMaxRoll caps the number of rounds. Non-positive caps produce nothing.
func WithMaxRoll(maxRoll int) Option {
	return func(o *Options) {
		o.MaxRoll = maxRoll
	}
}

// WithLogger reports every round at debug level.
func WithLogger(logger log.Log) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func buildOptions(opts []Option) Options {
	o := Options{
		MaxRoll: DefaultMaxRoll,
		Logger:  log.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = log.Nop()
	}
	return o
}
