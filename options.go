package kmeans

import (
	"log/slog"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/hupe1980/kmeans/resource"
)

// Rand is the random source used to sample the initial centroids.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniformly distributed int in [0, n).
	Intn(n int) int
}

type options struct {
	newRand          func() Rand
	workers          int
	controller       *resource.Controller
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Clusterer.
type Option func(*options)

// WithSeed makes every run seed its centroids from a fresh source
// initialized with seed, so repeated runs on the same data agree.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.newRand = func() Rand {
			return rand.New(rand.NewSource(seed)) // nolint gosec
		}
	}
}

// WithRand uses r for centroid sampling. The source is shared by all
// runs of the Clusterer and guarded by a mutex.
//
// If nil is passed, a time-seeded source is used per run.
func WithRand(r Rand) Option {
	return func(o *options) {
		if r == nil {
			o.newRand = defaultRand
			return
		}
		locked := &lockedRand{r: r}
		o.newRand = func() Rand { return locked }
	}
}

// WithWorkers sets the number of goroutines used by the assignment and
// update steps on large datasets. n <= 0 uses GOMAXPROCS.
// The default is 1 (single-threaded).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithResourceController shares a memory and worker budget with other
// Clusterers using the same controller.
//
// Example:
//
//	rc := resource.NewController(resource.Config{MaxWorkers: 8, MemoryLimitBytes: 1 << 30})
//	c := kmeans.New(kmeans.WithWorkers(4), kmeans.WithResourceController(rc))
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kmeans.BasicMetricsCollector{}
//	c := kmeans.New(kmeans.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.RunCount, stats.RunAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kmeans.NewJSONLogger(slog.LevelInfo)
//	c := kmeans.New(kmeans.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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
		newRand:          defaultRand,
		workers:          1,
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

func defaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano())) // nolint gosec
}

type lockedRand struct {
	mu sync.Mutex
	r  Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
