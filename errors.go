package procpool

import "errors"

const Namespace = "procpool"

var (
	// ErrInvalidConfig is reported by Config.Err when one or more numeric
	// policy fields resolved to the invalid sentinel.
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")

	// ErrInvalidOptionsDoc is returned by OptionsFromJSON/OptionsFromYAML
	// when an options document cannot be decoded into a record.
	ErrInvalidOptionsDoc = errors.New(Namespace + ": cannot decode options document")

	// The following sentinels name the failures this policy parameterizes.
	// They are raised by pool schedulers consuming the policy, never by this
	// package itself.

	// ErrConcurrencyLimit signals that accepting a task would exceed MaxTasks.
	ErrConcurrencyLimit = errors.New(Namespace + ": pool concurrency limit reached")

	// ErrTaskLost signals that a task exceeded TaskTimeout and its worker is
	// being terminated.
	ErrTaskLost = errors.New(Namespace + ": task timed out and is considered lost")

	// ErrRetriesExhausted signals that a task failed after TaskMaxRetries
	// re-attempts.
	ErrRetriesExhausted = errors.New(Namespace + ": task failed after exhausting retries")
)
