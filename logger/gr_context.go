package logger

import "github.com/dlshle/perf/gr_context"

// a go routine safe logging context maintainer, values are only visible to the goroutine that set them

const prefix = "$logging_"

func Set(k, v string) {
	gr_context.Put(prefix+k, v)
}

func Get(k string) string {
	v, _ := gr_context.Get(prefix + k).(string)
	return v
}

func getAll() map[string]string {
	res := make(map[string]string)
	for k, raw := range gr_context.GetByPrefix(prefix) {
		// values put through gr_context directly may be of any type
		if v, ok := raw.(string); ok {
			res[k[len(prefix):]] = v
		}
	}
	return res
}

func Delete(k string) {
	gr_context.Delete(prefix + k)
}

func Clear() {
	gr_context.ClearByPrefix(prefix)
}
