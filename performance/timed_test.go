package performance

import (
	"bytes"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"gotest.tools/v3/assert"
)

const pkgPath = "github.com/dlshle/perf/performance."

func double(x int) int {
	return x * 2
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errNotPositive
	}
	return n, nil
}

var errNotPositive = errors.New("not positive")

func TestTimed(t *testing.T) {
	t.Run("should return f(a) and a non negative elapsed", func(t *testing.T) {
		timed := Wrap(double)
		for _, x := range []int{-3, 0, 1, 21} {
			res, elapsed := timed.Call(x)
			assert.Equal(t, res, double(x))
			assert.Assert(t, elapsed >= 0)
		}
	})

	t.Run("should keep the wrapped function identity", func(t *testing.T) {
		timed := Wrap(double)
		assert.Equal(t, timed.Name(), pkgPath+"double")
		assert.Equal(t, timed.String(), "timed("+pkgPath+"double)")
		assert.Equal(t, timed.Func()(4), 8)
	})

	t.Run("should prefer an explicit name", func(t *testing.T) {
		assert.Equal(t, Wrap(double, WithName("doubler")).Name(), "doubler")
	})

	t.Run("should measure with the injected clock", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		timed := Wrap(func(d time.Duration) string {
			clock.Advance(d)
			return d.String()
		}, WithClock(clock))
		res, elapsed := timed.Call(42 * time.Millisecond)
		assert.Equal(t, res, "42ms")
		assert.Equal(t, elapsed, 42.0)
	})

	t.Run("should report under the function name when asked", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		var buf bytes.Buffer
		timed := Wrap(func(int) int {
			clock.Advance(time.Millisecond)
			return 0
		}, WithClock(clock), WithWriter(&buf), WithName("step"))
		timed.Call(0)
		assert.Equal(t, buf.String(), "step took 1.00ms\n")
	})

	t.Run("should propagate panics unchanged", func(t *testing.T) {
		type valueError struct{ msg string }
		raised := &valueError{msg: "bad value"}
		timed := Wrap(func(int) int {
			panic(raised)
		})
		recovered := capturePanic(func() {
			timed.Call(1)
		})
		assert.Equal(t, recovered, raised)
	})

	t.Run("should be safe for concurrent calls", func(t *testing.T) {
		timed := Wrap(double)
		var wg sync.WaitGroup
		results := make([]int, 16)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = timed.Call(i)
			}(i)
		}
		wg.Wait()
		for i, res := range results {
			assert.Equal(t, res, i*2)
		}
	})
}

func TestTimedWithErr(t *testing.T) {
	timed := WrapWithErr(parsePositive)

	t.Run("should keep the wrapped function identity", func(t *testing.T) {
		assert.Equal(t, timed.Name(), pkgPath+"parsePositive")
		n, err := timed.Func()("3")
		assert.NilError(t, err)
		assert.Equal(t, n, 3)
	})

	t.Run("should time successful calls", func(t *testing.T) {
		n, elapsed, err := timed.Call("12")
		assert.NilError(t, err)
		assert.Equal(t, n, 12)
		assert.Assert(t, elapsed >= 0)
	})

	t.Run("should return the callee error unchanged", func(t *testing.T) {
		_, elapsed, err := timed.Call("-1")
		assert.Assert(t, err == errNotPositive)
		assert.Equal(t, elapsed, 0.0)

		_, _, err = timed.Call("x")
		var numErr *strconv.NumError
		assert.Assert(t, errors.As(err, &numErr))
	})
}

func TestFuncName(t *testing.T) {
	assert.Equal(t, FuncName(double), pkgPath+"double")
	assert.Equal(t, FuncName(nil), "")
	assert.Equal(t, FuncName(42), "")
	var nilFn func()
	assert.Equal(t, FuncName(nilFn), "")
}
