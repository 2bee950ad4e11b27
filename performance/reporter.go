package performance

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dlshle/perf/logger"
)

const defaultDescription = "Execution"

type Reporter interface {
	Report(description string, elapsedMs float64)
}

type ReporterFunc func(description string, elapsedMs float64)

func (f ReporterFunc) Report(description string, elapsedMs float64) {
	f(description, elapsedMs)
}

// FormatReport renders "<description> took <ms>ms" with two decimals.
// An empty description is rendered as "Execution".
func FormatReport(description string, elapsedMs float64) string {
	if description == "" {
		description = defaultDescription
	}
	return fmt.Sprintf("%s took %.2fms", description, elapsedMs)
}

type writerReporter struct {
	w    io.Writer
	lock sync.Mutex
}

// resolved on every report so that a replaced os.Stdout is honoured
var stdoutReporter = &writerReporter{}

// NewWriterReporter writes one line per report to w.
func NewWriterReporter(w io.Writer) Reporter {
	return &writerReporter{w: w}
}

func (r *writerReporter) Report(description string, elapsedMs float64) {
	w := r.w
	if w == nil {
		w = os.Stdout
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	io.WriteString(w, FormatReport(description, elapsedMs)+"\n")
}

func WithWriter(w io.Writer) MeasureOpt {
	return WithReporter(NewWriterReporter(w))
}

type loggerReporter struct {
	logger logger.Logger
}

// NewLoggerReporter reports at INFO level through l, or through logger.GlobalLogger() when l is nil.
func NewLoggerReporter(l logger.Logger) Reporter {
	return loggerReporter{logger: l}
}

func (r loggerReporter) Report(description string, elapsedMs float64) {
	l := r.logger
	if l == nil {
		l = logger.GlobalLogger()
	}
	l.Info(FormatReport(description, elapsedMs))
}
