package logger

import (
	"bytes"
	"io"
	"sort"
	"sync"
	"time"
)

var logEntityPool sync.Pool

func init() {
	logEntityPool = sync.Pool{
		New: func() any {
			return new(LogEntity)
		},
	}
}

var (
	globalLogger     = StdOutLevelLogger("")
	globalLoggerLock sync.RWMutex
)

// GlobalLogger is the process wide logger, writing to stdout unless replaced by SetLogger.
func GlobalLogger() Logger {
	globalLoggerLock.RLock()
	defer globalLoggerLock.RUnlock()
	return globalLogger
}

func SetLogger(logger Logger) {
	globalLoggerLock.Lock()
	defer globalLoggerLock.Unlock()
	globalLogger = logger
}

const (
	TRACE = iota
	DEBUG
	INFO
	WARN
	ERROR
	FATAL

	pTrace = "[TRACE]"
	pDebug = "[DEBUG]"
	pInfo  = "[INFO]"
	pWarn  = "[WARN]"
	pError = "[ERROR]"
	pFatal = "[FATAL]"
)

var LogLevelPrefixMap = map[int]string{
	TRACE: pTrace,
	DEBUG: pDebug,
	INFO:  pInfo,
	WARN:  pWarn,
	ERROR: pError,
	FATAL: pFatal,
}

type Logger interface {
	Trace(records ...string)
	Debug(records ...string)
	Info(records ...string)
	Warn(records ...string)
	Error(records ...string)
	Fatal(records ...string)

	Tracef(format string, records ...interface{})
	Debugf(format string, records ...interface{})
	Infof(format string, records ...interface{})
	Warnf(format string, records ...interface{})
	Errorf(format string, records ...interface{})
	Fatalf(format string, records ...interface{})

	SetContext(k, v string)
	DeleteContext(k string)
	SetWaterMark(level int)
	Prefix(prefix string)
	Writer(writer LogWriter)

	// create new logger
	WithPrefix(prefix string) Logger
	WithWriter(writer LogWriter) Logger
	WithContext(context map[string]string) Logger
	WithGRContextLogging(bool) Logger
}

type LogEntity struct {
	Level     int
	Prefix    string
	Context   map[string]string
	Timestamp time.Time
	Message   string
	File      string
}

func (e *LogEntity) recycle() {
	e.Context = nil
	logEntityPool.Put(e)
}

func newLogEntity(level int, prefix string, context map[string]string, timestamp time.Time, message string, file string) *LogEntity {
	entity := logEntityPool.Get().(*LogEntity)
	entity.Level = level
	entity.Prefix = prefix
	entity.Context = context
	entity.Timestamp = timestamp
	entity.Message = message
	entity.File = file
	return entity
}

type LogWriter interface {
	Write(entity *LogEntity)
}

type SimpleStringWriter struct {
	consoleWriter io.Writer
	lock          *sync.Mutex
}

func NewConsoleLogWriter(writer io.Writer) LogWriter {
	return SimpleStringWriter{
		consoleWriter: writer,
		lock:          new(sync.Mutex),
	}
}

func (w SimpleStringWriter) Write(logEntity *LogEntity) {
	var builder bytes.Buffer
	builder.WriteString(logEntity.Timestamp.Format(time.RFC3339))
	builder.WriteRune(' ')
	builder.WriteString(LogLevelPrefixMap[logEntity.Level])
	builder.WriteRune(' ')
	if logEntity.Prefix != "" {
		builder.WriteString(logEntity.Prefix)
		builder.WriteRune(' ')
	}
	builder.WriteString(logEntity.File)
	builder.WriteRune(' ')
	// contexts, sorted so lines are stable
	if len(logEntity.Context) > 0 {
		keys := make([]string, 0, len(logEntity.Context))
		for k := range logEntity.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		builder.WriteRune('{')
		for i, k := range keys {
			if i > 0 {
				builder.WriteRune(';')
			}
			builder.WriteString(k)
			builder.WriteRune(':')
			builder.WriteString(logEntity.Context[k])
		}
		builder.WriteString("} ")
	}
	builder.WriteString(logEntity.Message)
	builder.WriteRune('\n')
	w.lock.Lock()
	defer w.lock.Unlock()
	w.consoleWriter.Write(builder.Bytes())
}

type NoopWriter struct{}

func NewNoopWriter() NoopWriter {
	return NoopWriter{}
}

func (w NoopWriter) Write(entity *LogEntity) {}
