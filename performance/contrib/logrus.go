// Package contrib holds performance reporters backed by third-party loggers.
package contrib

import (
	"github.com/dlshle/perf/performance"
	"github.com/sirupsen/logrus"
)

const (
	FieldDescription = "description"
	FieldElapsedMs   = "elapsed_ms"
)

type logrusReporter struct {
	logger logrus.FieldLogger
	level  logrus.Level
}

// NewLogrusReporter logs every report at INFO with the description and the
// elapsed milliseconds attached as fields.
func NewLogrusReporter(l logrus.FieldLogger) performance.Reporter {
	return NewLogrusReporterWithLevel(l, logrus.InfoLevel)
}

// NewLogrusReporterWithLevel logs at level. FatalLevel records a fatal entry without
// exiting, PanicLevel panics after logging as logrus does for Entry.Log.
func NewLogrusReporterWithLevel(l logrus.FieldLogger, level logrus.Level) performance.Reporter {
	return logrusReporter{
		logger: l,
		level:  level,
	}
}

func (r logrusReporter) Report(description string, elapsedMs float64) {
	entry := r.logger.WithFields(logrus.Fields{
		FieldDescription: description,
		FieldElapsedMs:   elapsedMs,
	})
	entry.Log(r.level, performance.FormatReport(description, elapsedMs))
}
