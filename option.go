package aatree

// options configures tree behaviour that does not affect ordering.
type options struct {
	logger          Logger
	invariantChecks bool // Verify after every Insert and Delete, panic on failure.
}

func defaultOptions() options {
	return options{
		logger: DiscardLogger{},
	}
}

// Option configures a tree using the functional options pattern.
type Option func(*options)

// WithLogger sets the logger that receives invariant violations.
//
//goland:noinspection GoUnusedExportedFunction
func WithLogger(logger Logger) Option {
	return func(opts *options) {
		if logger == nil {
			logger = DiscardLogger{}
		}
		opts.logger = logger
	}
}

// WithInvariantChecks makes every Insert and Delete run Verify afterwards and
// panic on the first violation. Each mutation becomes O(n); use it in tests
// and while debugging comparators.
//
//goland:noinspection GoUnusedExportedFunction
func WithInvariantChecks() Option {
	return func(opts *options) {
		opts.invariantChecks = true
	}
}
