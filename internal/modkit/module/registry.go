package module

import "sync"

// process-wide ports by module name, filled while mounting
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores a port set under a module name
func Register(name string, ports any) {
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// Lookup finds a T in the port set registered under name
func Lookup[T any](name string) (T, bool) {
	mu.RLock()
	p, ok := reg[name]
	mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	return extract[T](p)
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
