package parallel

import (
	"context"
	"runtime"

	"github.com/sirupsen/logrus"
)

// DefaultWorkers is the worker request used when none is given: all CPUs.
const DefaultWorkers = -1

// Config carries the worker policy through every entry point.
// The zero value is usable and equivalent to DefaultConfig().
type Config struct {
	// Workers is the raw request, resolved by ResolveWorkers.
	Workers int

	// CPUCount reports available execution units; nil means runtime.NumCPU.
	CPUCount func() int

	// Logger receives debug records; nil means the context logger.
	Logger logrus.FieldLogger
}

// DefaultConfig uses every available CPU and the context logger.
func DefaultConfig() Config {
	return Config{Workers: DefaultWorkers}
}

// Sequential is a Config that runs every chunk inline on the caller's goroutine.
func Sequential() Config {
	return Config{Workers: 1}
}

// EffectiveWorkers resolves c.Workers against the configured CPU count.
func (c Config) EffectiveWorkers() int {
	cpus := runtime.NumCPU()
	if c.CPUCount != nil {
		cpus = c.CPUCount()
	}

	return ResolveWorkers(c.Workers, cpus)
}

// ResolveWorkers maps a worker request onto a count ≥ 1.
//
//	request < 0  → max(1, cpus + 1 + request)   (-1 = all cpus)
//	request == 0 → cpus
//	request > 0  → request
//
// A cpus reading below 1 is treated as 1.
func ResolveWorkers(request, cpus int) int {
	if cpus < 1 {
		cpus = 1
	}
	switch {
	case request < 0:
		return max(1, cpus+1+request)
	case request == 0:
		return cpus
	default:
		return request
	}
}

// Log returns c.Logger when set, otherwise the logger attached to ctx.
// Every engine logs through it so a configured logger wins everywhere.
func (c Config) Log(ctx context.Context) logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	return Logger(ctx)
}

type loggerContextKey string

const loggerContextKeyVal = loggerContextKey("logrus.FieldLogger")

// Logger returns the logger attached to ctx, or the logrus standard logger.
func Logger(ctx context.Context) logrus.FieldLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerContextKeyVal).(logrus.FieldLogger); ok {
			return logger
		}
	}
	return logrus.StandardLogger()
}

// WithLogger attaches logger to ctx for every batch run under it.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerContextKeyVal, logger)
}
