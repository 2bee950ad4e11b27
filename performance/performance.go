// Package performance measures how long a unit of work takes.
//
// Every measurement reads the clock right before and right after the work and
// reports elapsed time in milliseconds. Results and failures of the measured
// work pass through untouched.
package performance

import (
	"sync"
	"time"

	"github.com/dlshle/perf/logger"
	"github.com/jonboulle/clockwork"
)

var (
	pkgLogger     = logger.CreateLevelLogger(logger.NewNoopWriter(), "[performance]", logger.LogAllWaterMark)
	pkgLoggerLock sync.RWMutex
)

// SetLogger replaces the logger used for the package's own debug traces.
func SetLogger(l logger.Logger) {
	pkgLoggerLock.Lock()
	defer pkgLoggerLock.Unlock()
	pkgLogger = l
}

func getLogger() logger.Logger {
	pkgLoggerLock.RLock()
	defer pkgLoggerLock.RUnlock()
	return pkgLogger
}

type MeasureOptions struct {
	Clock clockwork.Clock
	// Reporter receives (description, elapsed ms) once per completed measurement.
	// Scopes fall back to standard output, decorators stay silent when unset.
	Reporter Reporter
	// Name overrides the description used when reporting.
	Name string
}

type MeasureOpt func(*MeasureOptions) *MeasureOptions

// WithMeasureOptions replaces every option set so far with a copy of options.
// The caller's struct is never written to.
func WithMeasureOptions(options *MeasureOptions) MeasureOpt {
	return func(mo *MeasureOptions) *MeasureOptions {
		if options == nil {
			return &MeasureOptions{}
		}
		copied := *options
		return &copied
	}
}

func WithClock(clock clockwork.Clock) MeasureOpt {
	return func(mo *MeasureOptions) *MeasureOptions {
		mo.Clock = clock
		return mo
	}
}

func WithReporter(reporter Reporter) MeasureOpt {
	return func(mo *MeasureOptions) *MeasureOptions {
		mo.Reporter = reporter
		return mo
	}
}

func WithName(name string) MeasureOpt {
	return func(mo *MeasureOptions) *MeasureOptions {
		mo.Name = name
		return mo
	}
}

func resolveOptions(opts []MeasureOpt) *MeasureOptions {
	cfg := &MeasureOptions{}
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	if cfg == nil {
		cfg = &MeasureOptions{}
	}
	resolved := *cfg
	if resolved.Clock == nil {
		resolved.Clock = clockwork.NewRealClock()
	}
	return &resolved
}

func (o *MeasureOptions) measure(task func()) time.Duration {
	from := o.Clock.Now()
	task()
	return o.Clock.Since(from)
}

func (o *MeasureOptions) report(description string, elapsedMs float64) {
	if o.Reporter == nil {
		return
	}
	o.Reporter.Report(description, elapsedMs)
}

// Milliseconds converts d to fractional milliseconds. Negative durations become 0.
func Milliseconds(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}

func Measure(task func(), opts ...MeasureOpt) time.Duration {
	cfg := resolveOptions(opts)
	elapsed := cfg.measure(task)
	if elapsed < 0 {
		elapsed = 0
	}
	cfg.report(cfg.Name, Milliseconds(elapsed))
	return elapsed
}

// Measure1 runs task and returns its result unchanged together with the elapsed milliseconds.
// A panic in task propagates as is.
func Measure1[T any](task func() T, opts ...MeasureOpt) (T, float64) {
	cfg := resolveOptions(opts)
	var res T
	elapsed := Milliseconds(cfg.measure(func() {
		res = task()
	}))
	cfg.report(cfg.Name, elapsed)
	return res, elapsed
}

// MeasureWithErr1 is Measure1 for tasks that can fail. A non-nil error is handed back as is
// with whatever value task returned and an elapsed of 0, nothing gets reported.
func MeasureWithErr1[T any](task func() (T, error), opts ...MeasureOpt) (T, float64, error) {
	cfg := resolveOptions(opts)
	var (
		res T
		err error
	)
	elapsed := Milliseconds(cfg.measure(func() {
		res, err = task()
	}))
	if err != nil {
		return res, 0, err
	}
	cfg.report(cfg.Name, elapsed)
	return res, elapsed, nil
}
