package gr_context

import (
	"strconv"
	"strings"
	"sync"

	"github.com/petermattis/goid"
)

// keys are stored as "<goroutine id>:<key>" so every goroutine sees its own view
var (
	context = map[string]interface{}{}
	lock    sync.RWMutex
)

func Put(key string, v interface{}) {
	lock.Lock()
	defer lock.Unlock()
	context[goIDPrefix()+key] = v
}

func Get(key string) interface{} {
	lock.RLock()
	defer lock.RUnlock()
	return context[goIDPrefix()+key]
}

// GetByPrefix returns every entry of the calling goroutine whose key starts with prefix.
// Returned keys have the goroutine id stripped.
func GetByPrefix(prefix string) map[string]interface{} {
	id := goIDPrefix()
	res := make(map[string]interface{})
	lock.RLock()
	defer lock.RUnlock()
	for k, v := range context {
		if strings.HasPrefix(k, id+prefix) {
			res[k[len(id):]] = v
		}
	}
	return res
}

func Delete(key string) {
	lock.Lock()
	defer lock.Unlock()
	delete(context, goIDPrefix()+key)
}

func Clear() {
	ClearByPrefix("")
}

func ClearByPrefix(prefix string) {
	id := goIDPrefix()
	lock.Lock()
	defer lock.Unlock()
	for k := range context {
		if strings.HasPrefix(k, id+prefix) {
			delete(context, k)
		}
	}
}

func goIDPrefix() string {
	return strconv.FormatInt(goid.Get(), 10) + ":"
}
