package procpool

import (
	"math"
	"strings"

	"github.com/ygrebnov/errorc"
)

// Unbounded marks a limit field as having no limit. It is distinct from any
// finite number and from the invalid sentinel (see IsInvalid).
var Unbounded = math.Inf(1)

// IsUnbounded reports whether a resolved policy value is the Unbounded sentinel.
func IsUnbounded(v float64) bool { return math.IsInf(v, 1) }

// IsInvalid reports whether a resolved policy value is the not-a-number
// sentinel produced when input could not be coerced to a number.
func IsInvalid(v float64) bool { return math.IsNaN(v) }

// Config is the resolved, immutable policy for one worker-process pool.
// It is the single source of truth from which both pool-level behavior and
// per-worker runtime configuration (see WorkerOptions) are derived.
//
// Config is written exactly once, by Resolve, and read many times afterwards,
// concurrently, by the pool scheduler and by worker-spawning logic. Consumers
// must not mutate it.
//
// Numeric fields are float64 so that the two policy sentinels exist natively:
// Unbounded (+Inf) for "no limit applies" and NaN for "input could not be
// coerced" (see Err).
type Config struct {
	// AutoStart pre-spawns workers before the first task is dispatched.
	// Default: false
	AutoStart bool

	// LazyStart spawns new workers only when all existing ones are busy.
	// Default: false
	LazyStart bool

	// AsyncWorkerInitialization makes a worker signal readiness explicitly
	// instead of being considered ready immediately after spawn.
	// Default: false
	AsyncWorkerInitialization bool

	// MinWorkers is the floor of workers required for the pool to be
	// considered operational.
	// Default: 0
	MinWorkers float64

	// MaxWorkers is the ceiling on concurrently running workers.
	// Default: host logical CPU count
	MaxWorkers float64

	// MaxTasks is the ceiling on concurrently in-flight tasks across the
	// whole pool. Not to be confused with WorkerConfig.MaxTasks, which is
	// the per-worker cap.
	// Default: Unbounded
	MaxTasks float64

	// MaxTasksPerWorker is the ceiling on concurrently assigned tasks for
	// one worker.
	// Default: 1
	MaxTasksPerWorker float64

	// TaskTimeout is the duration in milliseconds after which an unanswered
	// task is considered lost.
	// Default: Unbounded
	TaskTimeout float64

	// TaskMaxRetries is the number of re-attempts permitted before a task is
	// reported failed.
	// Default: 0
	TaskMaxRetries float64

	// WorkerEndurance is the number of tasks a worker may serve before
	// mandatory retirement.
	// Default: Unbounded
	WorkerEndurance float64

	// WorkerStopTimeout is the grace period in milliseconds for graceful
	// shutdown before forced termination.
	// Default: 100
	WorkerStopTimeout float64

	// ResourceLimits is handed to each worker's execution environment
	// verbatim.
	// Default: empty record
	ResourceLimits ResourceLimits
}

// ResourceLimits carries runtime resource sizing knobs (memory and stack
// sizes) for a worker's execution environment. The record is passed through
// without transformation or validation and is shared by reference with every
// derived WorkerConfig; holders must treat it as immutable.
type ResourceLimits map[string]any

// Resolve builds a Config from a loose options record. Absent keys take the
// documented defaults, present keys are coerced per the rules in coerce.go,
// unknown keys are silently ignored. A nil record yields pure defaults.
//
// Resolve never fails: malformed numeric input degrades to the invalid
// sentinel instead of raising, and consumers must reject such a policy at
// first use (see Err).
func Resolve(opts Options) *Config {
	cfg := defaultConfig()
	if v, ok := opts["autoStart"]; ok {
		cfg.AutoStart = truthy(v)
	}
	if v, ok := opts["lazyStart"]; ok {
		cfg.LazyStart = truthy(v)
	}
	if v, ok := opts["asyncWorkerInitialization"]; ok {
		cfg.AsyncWorkerInitialization = truthy(v)
	}
	if v, ok := opts["minWorkers"]; ok {
		cfg.MinWorkers = number(v)
	}
	if v, ok := opts["maxWorkers"]; ok {
		cfg.MaxWorkers = number(v)
	}
	if v, ok := opts["maxTasks"]; ok {
		cfg.MaxTasks = number(v)
	}
	if v, ok := opts["maxTasksPerWorker"]; ok {
		cfg.MaxTasksPerWorker = number(v)
	}
	if v, ok := opts["taskTimeout"]; ok {
		cfg.TaskTimeout = number(v)
	}
	if v, ok := opts["taskMaxRetries"]; ok {
		cfg.TaskMaxRetries = number(v)
	}
	if v, ok := opts["workerEndurance"]; ok {
		cfg.WorkerEndurance = number(v)
	}
	if v, ok := opts["workerStopTimeout"]; ok {
		cfg.WorkerStopTimeout = number(v)
	}
	if v, ok := opts["resourceLimits"]; ok {
		switch rl := v.(type) {
		case ResourceLimits:
			cfg.ResourceLimits = rl
		case map[string]any:
			cfg.ResourceLimits = ResourceLimits(rl)
		case Options:
			cfg.ResourceLimits = ResourceLimits(rl)
		}
	}
	return &cfg
}

// HasTimeout reports whether TaskTimeout resolved to a finite number of
// milliseconds. It returns false both for the Unbounded sentinel and for the
// invalid sentinel. The scheduler uses it to decide whether to arm a
// per-task timeout watchdog.
func (c *Config) HasTimeout() bool {
	return !math.IsNaN(c.TaskTimeout) && !math.IsInf(c.TaskTimeout, 0)
}

// Err reports the numeric policy fields that resolved to the invalid
// sentinel, wrapped under ErrInvalidConfig. Resolve itself never fails;
// consumers call Err once, at first use, and refuse to run the pool with a
// poisoned policy. Returns nil when every numeric field is a well-formed
// number or Unbounded.
func (c *Config) Err() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"minWorkers", c.MinWorkers},
		{"maxWorkers", c.MaxWorkers},
		{"maxTasks", c.MaxTasks},
		{"maxTasksPerWorker", c.MaxTasksPerWorker},
		{"taskTimeout", c.TaskTimeout},
		{"taskMaxRetries", c.TaskMaxRetries},
		{"workerEndurance", c.WorkerEndurance},
		{"workerStopTimeout", c.WorkerStopTimeout},
	}
	var bad []string
	for _, f := range fields {
		if math.IsNaN(f.value) {
			bad = append(bad, f.name)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return errorc.With(ErrInvalidConfig, errorc.String("fields", strings.Join(bad, ", ")))
}
