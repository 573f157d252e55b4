package procpool

import "time"

// Options is the loose input record accepted by Resolve. Keys are
// case-sensitive and match the field names of Config with a lower-case first
// letter:
//
//	autoStart, lazyStart, asyncWorkerInitialization, minWorkers, maxWorkers,
//	maxTasks, maxTasksPerWorker, taskTimeout, taskMaxRetries,
//	workerEndurance, workerStopTimeout, resourceLimits
//
// Values of any type are accepted and coerced; unknown keys are silently
// ignored. Records typically come from application code, or from a JSON/YAML
// policy document via OptionsFromJSON/OptionsFromYAML.
type Options map[string]any

// Option writes one typed setting into an Options record.
// Use New(opts...) to construct a Config via options.
type Option func(Options)

// New resolves a Config from typed functional options. It assembles an
// Options record and delegates to Resolve; New() with no options yields the
// same Config as Resolve(nil).
func New(opts ...Option) *Config {
	raw := Options{}
	for _, opt := range opts {
		if opt != nil {
			opt(raw)
		}
	}
	return Resolve(raw)
}

// WithAutoStart pre-spawns workers before the first task is dispatched.
func WithAutoStart() Option {
	return func(o Options) { o["autoStart"] = true }
}

// WithLazyStart spawns new workers only when all existing ones are busy.
func WithLazyStart() Option {
	return func(o Options) { o["lazyStart"] = true }
}

// WithAsyncWorkerInitialization makes workers signal readiness explicitly.
func WithAsyncWorkerInitialization() Option {
	return func(o Options) { o["asyncWorkerInitialization"] = true }
}

// WithMinWorkers sets the floor of workers required for an operational pool.
func WithMinWorkers(n uint) Option {
	return func(o Options) { o["minWorkers"] = n }
}

// WithMaxWorkers caps concurrently running workers (default: logical CPU count).
func WithMaxWorkers(n uint) Option {
	return func(o Options) { o["maxWorkers"] = n }
}

// WithMaxTasks caps concurrently in-flight tasks across the pool
// (default: Unbounded).
func WithMaxTasks(n uint) Option {
	return func(o Options) { o["maxTasks"] = n }
}

// WithMaxTasksPerWorker caps concurrently assigned tasks per worker (default 1).
func WithMaxTasksPerWorker(n uint) Option {
	return func(o Options) { o["maxTasksPerWorker"] = n }
}

// WithTaskTimeout sets the duration after which an unanswered task is
// considered lost (default: Unbounded).
func WithTaskTimeout(d time.Duration) Option {
	return func(o Options) { o["taskTimeout"] = d }
}

// WithTaskMaxRetries sets the number of re-attempts permitted before a task
// is reported failed (default 0).
func WithTaskMaxRetries(n uint) Option {
	return func(o Options) { o["taskMaxRetries"] = n }
}

// WithWorkerEndurance sets the number of tasks a worker may serve before
// mandatory retirement (default: Unbounded).
func WithWorkerEndurance(n uint) Option {
	return func(o Options) { o["workerEndurance"] = n }
}

// WithWorkerStopTimeout sets the grace period for graceful worker shutdown
// before forced termination (default 100ms).
func WithWorkerStopTimeout(d time.Duration) Option {
	return func(o Options) { o["workerStopTimeout"] = d }
}

// WithResourceLimits sets the resource sizing record handed to each worker's
// execution environment. The record is shared, not copied.
func WithResourceLimits(rl ResourceLimits) Option {
	return func(o Options) { o["resourceLimits"] = rl }
}
