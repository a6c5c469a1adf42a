// SPDX-License-Identifier: MIT

package matfn

import "go.uber.org/zap"

const panicNilLogger = "matfn: WithLogger: logger must not be nil"

// Option configures a single call of Expm, Cosm or Sinm.
type Option func(*options)

type options struct {
	logger     *zap.Logger // never nil after gatherOptions
	checkInput bool        // reject NaN/±Inf entries up front
}

// WithLogger routes the per-call debug record (selected norm and scale
// exponent) to l. Panics on a nil logger; use zap.NewNop() to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithInputCheck makes the call fail with matrix.ErrNaNInf when the input
// holds a NaN or ±Inf entry, before any arithmetic is done.
func WithInputCheck() Option {
	return func(o *options) { o.checkInput = true }
}

// gatherOptions applies setters over the defaults (no-op logger, no input check).
func gatherOptions(user ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
