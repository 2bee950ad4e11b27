package performance

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Scope brackets a block of work. The start is read by Track and the report is
// emitted by the first Stop:
//
//	defer performance.Track("load").Stop()
//
// A deferred Stop also runs while a panic unwinds, so failing blocks are reported too.
// A Scope belongs to the goroutine that created it.
type Scope struct {
	description string
	clock       clockwork.Clock
	reporter    Reporter
	start       time.Time
	stopped     bool
	// frozen by the first Stop
	elapsed time.Duration
}

func Track(description string, opts ...MeasureOpt) *Scope {
	cfg := resolveOptions(opts)
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = stdoutReporter
	}
	return &Scope{
		description: description,
		clock:       cfg.Clock,
		reporter:    reporter,
		start:       cfg.Clock.Now(),
	}
}

func (s *Scope) Stop() {
	if s.stopped {
		getLogger().Debugf("scope %q already stopped", s.description)
		return
	}
	s.stop()
}

func (s *Scope) stop() time.Duration {
	s.elapsed = s.Elapsed()
	s.stopped = true
	s.reporter.Report(s.description, Milliseconds(s.elapsed))
	return s.elapsed
}

// Elapsed reads the running duration without stopping the scope. Once stopped it
// returns the reported duration.
func (s *Scope) Elapsed() time.Duration {
	if s.stopped {
		return s.elapsed
	}
	elapsed := s.clock.Since(s.start)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (s *Scope) Description() string {
	return s.description
}

// MeasureWithLog runs task inside a Scope and returns the reported duration.
// The report is emitted even if task panics.
func MeasureWithLog(description string, task func(), opts ...MeasureOpt) time.Duration {
	scope := Track(description, opts...)
	completed := false
	defer func() {
		if !completed {
			scope.stop()
		}
	}()
	task()
	completed = true
	return scope.stop()
}
