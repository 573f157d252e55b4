package procpool

import "runtime"

// defaultConfig centralizes default values for Config.
// These defaults are applied by Resolve for every key absent from the input
// record. MaxWorkers is the only host-dependent default: it reads the logical
// CPU count once, at resolution time.
func defaultConfig() Config {
	return Config{
		AutoStart:                 false,
		LazyStart:                 false,
		AsyncWorkerInitialization: false,
		MinWorkers:                0,
		MaxWorkers:                float64(runtime.NumCPU()),
		MaxTasks:                  Unbounded,
		MaxTasksPerWorker:         1,
		TaskTimeout:               Unbounded,
		TaskMaxRetries:            0,
		WorkerEndurance:           Unbounded,
		WorkerStopTimeout:         100,
		ResourceLimits:            ResourceLimits{},
	}
}
