// SPDX-License-Identifier: MIT

package regression

// Option configures Polynomial.
type Option func(*Options)

// Options is the effective configuration.
type Options struct {
	qr bool
}

// WithQR solves the least-squares problem by QR factorization of the design
// matrix instead of the normal equations.
func WithQR() Option {
	return func(o *Options) { o.qr = true }
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
