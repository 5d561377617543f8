package bitvec

import "log/slog"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	budget           *MemoryBudget
}

// Option configures a Dynamic bitset.
type Option func(*options)

// WithMetricsCollector configures a metrics collector notified on every
// storage reallocation. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bitvec.BasicMetricsCollector{}
//	bs := bitvec.NewDynamic[uint64](0, bitvec.WithMetricsCollector(metrics))
//	// ... use bs ...
//	stats := metrics.GetStats()
//	fmt.Printf("Grows: %d, Avg latency: %dns\n", stats.GrowCount, stats.ReallocAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging of reallocations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMemoryBudget charges every storage buffer against budget. Operations
// that would exceed it panic with *ErrCapacityExceeded; use the Try forms
// (TryResize, TryPushBack) to get the error instead.
func WithMemoryBudget(budget *MemoryBudget) Option {
	return func(o *options) {
		o.budget = budget
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
