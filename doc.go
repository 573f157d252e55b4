// Package procpool defines and resolves the policy contract for a
// worker-process pool: how many workers may run, how many tasks each may
// hold, when a task is considered lost, how many retries are permitted, and
// when a worker must be retired or force-killed.
//
// Constructors
//   - Resolve(opts Options): resolves a loose, partially-populated options
//     record (typically decoded from JSON or YAML) into an immutable Config.
//   - New(opts ...Option): typed functional-options constructor. Both forms
//     produce identical configurations; prefer New in application code and
//     Resolve when the policy arrives as data.
//
// Defaults
// Unless overridden, the following defaults apply to a resolved Config:
//   - AutoStart: false
//   - LazyStart: false
//   - AsyncWorkerInitialization: false
//   - MinWorkers: 0
//   - MaxWorkers: host logical CPU count
//   - MaxTasks: Unbounded
//   - MaxTasksPerWorker: 1
//   - TaskTimeout: Unbounded (milliseconds when finite)
//   - TaskMaxRetries: 0
//   - WorkerEndurance: Unbounded
//   - WorkerStopTimeout: 100 (milliseconds)
//   - ResourceLimits: empty record
//
// Sentinels
// Numeric policy fields are float64 and carry two sentinels: Unbounded
// (positive infinity) means no limit applies; NaN means the supplied value
// could not be coerced to a number. Resolution never fails, even on
// nonsensical input; consumers must check Config.Err at first use and refuse
// to run a pool whose policy contains invalid values.
//
// Consumers
// The pool scheduler reads every resolved field plus HasTimeout to decide
// whether to arm a per-task timeout watchdog. Worker-spawning logic calls
// WorkerOptions once per spawn to obtain the worker-scoped view, including
// the shared ResourceLimits record it must apply to the spawned execution
// context. Task dispatch, worker lifecycle, IPC and retry execution live in
// those consumers, not here; this package only produces the values that
// parameterize them.
package procpool
