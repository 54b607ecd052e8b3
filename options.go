package skewheap

import (
	"log/slog"

	"github.com/hupe1980/skewheap/resource"
)

const (
	// DefaultCompactionMinSlots is the arena size below which compaction never runs.
	DefaultCompactionMinSlots = 100
	// DefaultCompactionMaxFreeRatio is the free-slot fraction above which a
	// take triggers compaction.
	DefaultCompactionMaxFreeRatio = 0.9
)

type options struct {
	name                string
	metricsCollector    MetricsCollector
	logger              *Logger
	autoCompact         bool
	compactMinSlots     int
	compactMaxFreeRatio float64
	maxNodes            int
	initialCapacity     int
	resources           *resource.Controller
}

// Option configures a Heap.
type Option func(*options)

// WithName labels the heap in log records.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithCompaction tunes when Take compacts the arena: once the arena holds at
// least minSlots slots and more than maxFreeRatio of them are free.
//
// Values out of range (minSlots < 1, maxFreeRatio outside (0, 1)) keep the
// defaults of DefaultCompactionMinSlots and DefaultCompactionMaxFreeRatio.
func WithCompaction(minSlots int, maxFreeRatio float64) Option {
	return func(o *options) {
		if minSlots >= 1 {
			o.compactMinSlots = minSlots
		}
		if maxFreeRatio > 0 && maxFreeRatio < 1 {
			o.compactMaxFreeRatio = maxFreeRatio
		}
	}
}

// WithoutAutoCompaction disables compaction on Take. Heap.Compact still works.
func WithoutAutoCompaction() Option {
	return func(o *options) {
		o.autoCompact = false
	}
}

// WithMaxNodes caps the number of node slots (live plus free). Put fails with
// ErrArenaExhausted once the cap is reached and no freed slot is available.
// Values <= 0 mean the full uint32 handle space.
func WithMaxNodes(n int) Option {
	return func(o *options) {
		o.maxNodes = n
	}
}

// WithInitialCapacity preallocates room for n nodes.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

// WithResourceController charges node memory to rc. Share one controller
// between heaps to put them under a common budget.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

// WithMemoryLimit gives the heap a private memory budget of bytes.
// Convenience wrapper for WithResourceController with a fresh controller.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.resources = resource.NewController(resource.Config{MemoryLimitBytes: bytes})
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &skewheap.BasicMetricsCollector{}
//	h := skewheap.New[int](skewheap.WithMetricsCollector(metrics))
//	// ... use h ...
//	stats := metrics.GetStats()
//	fmt.Printf("Compactions: %d\n", stats.CompactionCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := skewheap.NewJSONLogger(slog.LevelDebug)
//	h := skewheap.New[int](skewheap.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
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
		metricsCollector:    NoopMetricsCollector{},
		logger:              NoopLogger(),
		autoCompact:         true,
		compactMinSlots:     DefaultCompactionMinSlots,
		compactMaxFreeRatio: DefaultCompactionMaxFreeRatio,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.name != "" {
		o.logger = o.logger.WithName(o.name)
	}
	return o
}
