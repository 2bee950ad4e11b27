package performance

import (
	"reflect"
	"runtime"
)

// Timed decorates fn so that every call also yields the call's duration in milliseconds.
// It is immutable and safe for concurrent use.
type Timed[A, T any] struct {
	fn   func(A) T
	name string
	cfg  *MeasureOptions
}

func Wrap[A, T any](fn func(A) T, opts ...MeasureOpt) *Timed[A, T] {
	cfg := resolveOptions(opts)
	return &Timed[A, T]{
		fn:   fn,
		name: nameOf(fn, cfg),
		cfg:  cfg,
	}
}

func (t *Timed[A, T]) Call(arg A) (T, float64) {
	var res T
	elapsed := Milliseconds(t.cfg.measure(func() {
		res = t.fn(arg)
	}))
	t.cfg.report(t.name, elapsed)
	return res, elapsed
}

// Name is the wrapped function's name, not the wrapper's.
func (t *Timed[A, T]) Name() string {
	return t.name
}

func (t *Timed[A, T]) Func() func(A) T {
	return t.fn
}

func (t *Timed[A, T]) String() string {
	return "timed(" + t.name + ")"
}

type TimedWithErr[A, T any] struct {
	fn   func(A) (T, error)
	name string
	cfg  *MeasureOptions
}

func WrapWithErr[A, T any](fn func(A) (T, error), opts ...MeasureOpt) *TimedWithErr[A, T] {
	cfg := resolveOptions(opts)
	return &TimedWithErr[A, T]{
		fn:   fn,
		name: nameOf(fn, cfg),
		cfg:  cfg,
	}
}

// Call follows MeasureWithErr1: on error the elapsed time is 0 and the error is returned as is.
func (t *TimedWithErr[A, T]) Call(arg A) (T, float64, error) {
	var (
		res T
		err error
	)
	elapsed := Milliseconds(t.cfg.measure(func() {
		res, err = t.fn(arg)
	}))
	if err != nil {
		return res, 0, err
	}
	t.cfg.report(t.name, elapsed)
	return res, elapsed, nil
}

func (t *TimedWithErr[A, T]) Name() string {
	return t.name
}

func (t *TimedWithErr[A, T]) Func() func(A) (T, error) {
	return t.fn
}

func (t *TimedWithErr[A, T]) String() string {
	return "timed(" + t.name + ")"
}

func nameOf(fn any, cfg *MeasureOptions) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	return FuncName(fn)
}

// FuncName returns the fully qualified name of a function value, or "" if fn is not a non-nil func.
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	return f.Name()
}
