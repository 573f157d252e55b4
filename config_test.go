package procpool

import (
	"errors"
	"math"
	"runtime"
	"testing"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := defaultConfig()
	if cfg.AutoStart != false {
		t.Fatalf("AutoStart default = %v; want false", cfg.AutoStart)
	}
	if cfg.LazyStart != false {
		t.Fatalf("LazyStart default = %v; want false", cfg.LazyStart)
	}
	if cfg.AsyncWorkerInitialization != false {
		t.Fatalf("AsyncWorkerInitialization default = %v; want false", cfg.AsyncWorkerInitialization)
	}
	if cfg.MinWorkers != 0 {
		t.Fatalf("MinWorkers default = %v; want 0", cfg.MinWorkers)
	}
	if cfg.MaxWorkers != float64(runtime.NumCPU()) {
		t.Fatalf("MaxWorkers default = %v; want %d", cfg.MaxWorkers, runtime.NumCPU())
	}
	if !IsUnbounded(cfg.MaxTasks) {
		t.Fatalf("MaxTasks default = %v; want Unbounded", cfg.MaxTasks)
	}
	if cfg.MaxTasksPerWorker != 1 {
		t.Fatalf("MaxTasksPerWorker default = %v; want 1", cfg.MaxTasksPerWorker)
	}
	if !IsUnbounded(cfg.TaskTimeout) {
		t.Fatalf("TaskTimeout default = %v; want Unbounded", cfg.TaskTimeout)
	}
	if cfg.TaskMaxRetries != 0 {
		t.Fatalf("TaskMaxRetries default = %v; want 0", cfg.TaskMaxRetries)
	}
	if !IsUnbounded(cfg.WorkerEndurance) {
		t.Fatalf("WorkerEndurance default = %v; want Unbounded", cfg.WorkerEndurance)
	}
	if cfg.WorkerStopTimeout != 100 {
		t.Fatalf("WorkerStopTimeout default = %v; want 100", cfg.WorkerStopTimeout)
	}
	if cfg.ResourceLimits == nil || len(cfg.ResourceLimits) != 0 {
		t.Fatalf("ResourceLimits default = %v; want empty record", cfg.ResourceLimits)
	}
}

func TestResolve_NilAndEmptyYieldDefaults(t *testing.T) {
	t.Parallel()

	for _, opts := range []Options{nil, {}} {
		cfg := Resolve(opts)
		if cfg.MinWorkers != 0 || cfg.MaxTasksPerWorker != 1 || cfg.WorkerStopTimeout != 100 {
			t.Fatalf("Resolve(%v) = %+v; want documented defaults", opts, cfg)
		}
		if cfg.MaxWorkers != float64(runtime.NumCPU()) {
			t.Fatalf("MaxWorkers = %v; want host logical CPU count %d", cfg.MaxWorkers, runtime.NumCPU())
		}
	}
}

func TestResolve_BooleanFieldsAreStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"bool_true", true, true},
		{"bool_false", false, false},
		{"nonempty_string", "yes", true},
		{"empty_string", "", false},
		{"nonzero_int", 1, true},
		{"zero_int", 0, false},
		{"nil", nil, false},
		{"empty_map", map[string]any{}, true},
		{"nonzero_float", 0.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Resolve(Options{
				"autoStart": tc.in,
				"lazyStart": tc.in,
			})
			if cfg.AutoStart != tc.want {
				t.Fatalf("AutoStart(%#v) = %v; want %v", tc.in, cfg.AutoStart, tc.want)
			}
			if cfg.LazyStart != tc.want {
				t.Fatalf("LazyStart(%#v) = %v; want %v", tc.in, cfg.LazyStart, tc.want)
			}
		})
	}
}

func TestResolve_NumericCoercion(t *testing.T) {
	t.Parallel()

	cfg := Resolve(Options{"maxTasksPerWorker": "3"})
	if cfg.MaxTasksPerWorker != 3 {
		t.Fatalf("MaxTasksPerWorker(\"3\") = %v; want 3", cfg.MaxTasksPerWorker)
	}

	cfg = Resolve(Options{"maxTasksPerWorker": "abc"})
	if !IsInvalid(cfg.MaxTasksPerWorker) {
		t.Fatalf("MaxTasksPerWorker(\"abc\") = %v; want invalid sentinel", cfg.MaxTasksPerWorker)
	}
}

func TestResolve_MalformedInputNeverFails(t *testing.T) {
	t.Parallel()

	// Nonsensical input degrades to sentinels instead of raising.
	cfg := Resolve(Options{
		"maxWorkers":  []int{1, 2, 3},
		"taskTimeout": nil,
		"minWorkers":  map[string]any{},
	})
	if !IsInvalid(cfg.MaxWorkers) || !IsInvalid(cfg.TaskTimeout) || !IsInvalid(cfg.MinWorkers) {
		t.Fatalf("malformed numerics = %v/%v/%v; want invalid sentinels",
			cfg.MaxWorkers, cfg.TaskTimeout, cfg.MinWorkers)
	}

	// Negative values are not rejected at this layer.
	cfg = Resolve(Options{"maxWorkers": -4})
	if cfg.MaxWorkers != -4 {
		t.Fatalf("MaxWorkers(-4) = %v; want -4 (no cross-field validation)", cfg.MaxWorkers)
	}
}

func TestResolve_UnknownKeysIgnored(t *testing.T) {
	t.Parallel()

	cfg := Resolve(Options{
		"noSuchOption": 42,
		"MaxWorkers":   99, // keys are case-sensitive
	})
	if cfg.MaxWorkers != float64(runtime.NumCPU()) {
		t.Fatalf("MaxWorkers = %v; want default (unknown keys ignored)", cfg.MaxWorkers)
	}
}

func TestHasTimeout(t *testing.T) {
	t.Parallel()

	if Resolve(nil).HasTimeout() {
		t.Fatalf("HasTimeout() = true for omitted taskTimeout; want false")
	}
	if !Resolve(Options{"taskTimeout": 5000}).HasTimeout() {
		t.Fatalf("HasTimeout() = false for taskTimeout=5000; want true")
	}
	if Resolve(Options{"taskTimeout": "abc"}).HasTimeout() {
		t.Fatalf("HasTimeout() = true for invalid taskTimeout; want false")
	}
	if Resolve(Options{"taskTimeout": Unbounded}).HasTimeout() {
		t.Fatalf("HasTimeout() = true for Unbounded taskTimeout; want false")
	}
}

func TestConfigErr(t *testing.T) {
	t.Parallel()

	if err := Resolve(nil).Err(); err != nil {
		t.Fatalf("Err() = %v for defaults; want nil", err)
	}

	err := Resolve(Options{"taskTimeout": "abc", "minWorkers": nil}).Err()
	if err == nil {
		t.Fatalf("Err() = nil for invalid policy; want ErrInvalidConfig")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Err() = %v; want wrapped ErrInvalidConfig", err)
	}
}

func TestSentinels_Distinguishable(t *testing.T) {
	t.Parallel()

	if !IsUnbounded(Unbounded) {
		t.Fatalf("IsUnbounded(Unbounded) = false")
	}
	if IsUnbounded(math.NaN()) || IsInvalid(Unbounded) {
		t.Fatalf("Unbounded and invalid sentinels must be distinct")
	}
	if IsUnbounded(5000) || IsInvalid(5000) {
		t.Fatalf("finite values must match neither sentinel")
	}
}
