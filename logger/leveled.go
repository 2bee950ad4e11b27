package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

type LevelLogger struct {
	writer            LogWriter
	prefix            string
	logLevelWaterMark int
	context           map[string]string
	enableGRContext   bool
}

const LogAllWaterMark = -1

func StdOutLevelLogger(prefix string) Logger {
	return CreateLevelLogger(NewConsoleLogWriter(os.Stdout), prefix, LogAllWaterMark)
}

func NewLevelLogger(writer io.Writer, prefix string, waterMark int) Logger {
	return CreateLevelLogger(NewConsoleLogWriter(writer), prefix, waterMark)
}

func CreateLevelLogger(entityWriter LogWriter, prefix string, loggingMark int) Logger {
	return &LevelLogger{
		writer:            entityWriter,
		prefix:            prefix,
		logLevelWaterMark: loggingMark,
		context:           make(map[string]string),
		enableGRContext:   true,
	}
}

func (l *LevelLogger) output(level int, data ...string) {
	if level < l.logLevelWaterMark {
		return
	}
	message := "nil"
	if data != nil {
		message = strings.Join(data, "")
	}
	logEntity := newLogEntity(level, l.prefix, l.prepareContext(), time.Now(), message, l.getFileName())
	l.writer.Write(logEntity)
	logEntity.recycle()
}

func (l *LevelLogger) getFileName() string {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		file = "???"
		line = 0
	}
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		file = file[i+1:]
	}
	return file + ":" + strconv.Itoa(line)
}

// global context < logger context < goroutine context
func (l *LevelLogger) prepareContext() map[string]string {
	allContext := getGlobalContexts()
	for k, v := range l.context {
		allContext[k] = v
	}
	if l.enableGRContext {
		for k, v := range getAll() {
			allContext[k] = v
		}
	}
	return allContext
}

func (l *LevelLogger) Trace(records ...string) {
	l.output(TRACE, records...)
}

func (l *LevelLogger) Debug(records ...string) {
	l.output(DEBUG, records...)
}

func (l *LevelLogger) Info(records ...string) {
	l.output(INFO, records...)
}

func (l *LevelLogger) Warn(records ...string) {
	l.output(WARN, records...)
}

func (l *LevelLogger) Error(records ...string) {
	l.output(ERROR, records...)
}

func (l *LevelLogger) Fatal(records ...string) {
	l.output(FATAL, records...)
}

func (l *LevelLogger) Tracef(format string, records ...interface{}) {
	l.output(TRACE, fmt.Sprintf(format, records...))
}

func (l *LevelLogger) Debugf(format string, records ...interface{}) {
	l.output(DEBUG, fmt.Sprintf(format, records...))
}

func (l *LevelLogger) Infof(format string, records ...interface{}) {
	l.output(INFO, fmt.Sprintf(format, records...))
}

func (l *LevelLogger) Warnf(format string, records ...interface{}) {
	l.output(WARN, fmt.Sprintf(format, records...))
}

func (l *LevelLogger) Errorf(format string, records ...interface{}) {
	l.output(ERROR, fmt.Sprintf(format, records...))
}

func (l *LevelLogger) Fatalf(format string, records ...interface{}) {
	l.output(FATAL, fmt.Sprintf(format, records...))
}

func (l *LevelLogger) SetContext(k, v string) {
	l.context[k] = v
}

func (l *LevelLogger) DeleteContext(k string) {
	delete(l.context, k)
}

func (l *LevelLogger) SetWaterMark(level int) {
	l.logLevelWaterMark = level
}

func (l *LevelLogger) Prefix(prefix string) {
	l.prefix = prefix
}

func (l *LevelLogger) Writer(writer LogWriter) {
	l.writer = writer
}

func (l *LevelLogger) WithPrefix(prefix string) Logger {
	return l.derive(func(sub *LevelLogger) {
		sub.prefix = prefix
	})
}

func (l *LevelLogger) WithWriter(writer LogWriter) Logger {
	return l.derive(func(sub *LevelLogger) {
		sub.writer = writer
	})
}

func (l *LevelLogger) WithContext(context map[string]string) Logger {
	return l.derive(func(sub *LevelLogger) {
		for k, v := range context {
			sub.context[k] = v
		}
	})
}

func (l *LevelLogger) WithGRContextLogging(useGRCL bool) Logger {
	return l.derive(func(sub *LevelLogger) {
		sub.enableGRContext = useGRCL
	})
}

func (l *LevelLogger) derive(modifier func(*LevelLogger)) Logger {
	sub := &LevelLogger{
		writer:            l.writer,
		prefix:            l.prefix,
		logLevelWaterMark: l.logLevelWaterMark,
		context:           make(map[string]string, len(l.context)),
		enableGRContext:   l.enableGRContext,
	}
	for k, v := range l.context {
		sub.context[k] = v
	}
	modifier(sub)
	return sub
}
