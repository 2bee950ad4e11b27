package logger

import "sync"

var (
	ctx     = make(map[string]string)
	ctxLock sync.RWMutex
)

func SetGlobalContext(k, v string) {
	ctxLock.Lock()
	defer ctxLock.Unlock()
	ctx[k] = v
}

func DeleteGlobalContext(k string) {
	ctxLock.Lock()
	defer ctxLock.Unlock()
	delete(ctx, k)
}

func ClearGlobalContext() {
	ctxLock.Lock()
	defer ctxLock.Unlock()
	for k := range ctx {
		delete(ctx, k)
	}
}

// returns a copy
func getGlobalContexts() map[string]string {
	ctxLock.RLock()
	defer ctxLock.RUnlock()
	res := make(map[string]string, len(ctx))
	for k, v := range ctx {
		res[k] = v
	}
	return res
}
