package procpool

import "go.uber.org/zap/zapcore"

// MarshalLogObject implements zapcore.ObjectMarshaler so a pool can log its
// resolved policy structurally, without reflection. Unbounded fields encode
// as +Inf, invalid fields as NaN; the JSON encoder renders both as strings.
func (c *Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("autoStart", c.AutoStart)
	enc.AddBool("lazyStart", c.LazyStart)
	enc.AddBool("asyncWorkerInitialization", c.AsyncWorkerInitialization)
	enc.AddFloat64("minWorkers", c.MinWorkers)
	enc.AddFloat64("maxWorkers", c.MaxWorkers)
	enc.AddFloat64("maxTasks", c.MaxTasks)
	enc.AddFloat64("maxTasksPerWorker", c.MaxTasksPerWorker)
	enc.AddFloat64("taskTimeout", c.TaskTimeout)
	enc.AddFloat64("taskMaxRetries", c.TaskMaxRetries)
	enc.AddFloat64("workerEndurance", c.WorkerEndurance)
	enc.AddFloat64("workerStopTimeout", c.WorkerStopTimeout)
	return enc.AddReflected("resourceLimits", c.ResourceLimits)
}

// MarshalLogObject implements zapcore.ObjectMarshaler for the worker-scoped view.
func (w WorkerConfig) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("sourceEntryPath", w.SourceEntryPath)
	enc.AddFloat64("maxTasks", w.MaxTasks)
	enc.AddFloat64("endurance", w.Endurance)
	enc.AddFloat64("stopTimeout", w.StopTimeout)
	enc.AddBool("asyncWorkerInitialization", w.AsyncWorkerInitialization)
	return enc.AddReflected("resourceLimits", w.ResourceLimits)
}
