package delaunay

import "go.uber.org/zap"

// Option configures a triangulation. Options are set when the triangulation is
// created and carried by every triangulation derived from it.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// WithLogger sets the logger insertions are reported to, at debug level. A nil
// logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = zap.NewNop()
		}
		o.logger = logger
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
