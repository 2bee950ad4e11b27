package logger

import "testing"

// NewTestLogger routes every log line to t.Log.
func NewTestLogger(t *testing.T) Logger {
	return NewLevelLogger(testLoggerWriterWrapper{
		t: t,
	}, "", LogAllWaterMark)
}

type testLoggerWriterWrapper struct {
	t *testing.T
}

func (l testLoggerWriterWrapper) Write(p []byte) (int, error) {
	l.t.Logf("%s", string(p))
	return len(p), nil
}
