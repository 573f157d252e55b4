package procpool

// WorkerConfig is the policy subset handed to one specific worker at spawn
// time. It is a projection of the Config it was derived from plus the
// caller-supplied source entry path; it owns no independent state.
//
// Instances are created on demand, one per worker spawn, owned by the
// spawning logic until the worker terminates, and never reused across worker
// instances even when values are identical.
type WorkerConfig struct {
	// SourceEntryPath identifies the code the worker process must load.
	SourceEntryPath string

	// MaxTasks is this worker's own concurrent-task cap, projected from the
	// pool's MaxTasksPerWorker. In the worker's scope the cap is called
	// MaxTasks; it is distinct from the pool-level Config.MaxTasks.
	MaxTasks float64

	// Endurance is the number of tasks this worker may serve before
	// mandatory retirement, projected from WorkerEndurance.
	Endurance float64

	// StopTimeout is the graceful-shutdown grace period in milliseconds,
	// projected from WorkerStopTimeout.
	StopTimeout float64

	// AsyncWorkerInitialization mirrors the pool-level flag.
	AsyncWorkerInitialization bool

	// ResourceLimits is the same record the pool holds, shared by reference.
	// The worker runtime applies it to the spawned execution context.
	ResourceLimits ResourceLimits
}

// WorkerOptions derives the configuration for a single worker about to be
// spawned with the given source entry path. It is a pure function of the
// Config and the path: no side effects, callable any number of times, always
// structurally equal for equal inputs. ResourceLimits is shared with the
// pool, not copied.
func (c *Config) WorkerOptions(sourceEntryPath string) WorkerConfig {
	return WorkerConfig{
		SourceEntryPath:           sourceEntryPath,
		MaxTasks:                  c.MaxTasksPerWorker,
		Endurance:                 c.WorkerEndurance,
		StopTimeout:               c.WorkerStopTimeout,
		AsyncWorkerInitialization: c.AsyncWorkerInitialization,
		ResourceLimits:            c.ResourceLimits,
	}
}
