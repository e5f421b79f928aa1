package native

import (
	"fmt"
	"sync"
)

// fakeLoader serves libraries from an in-memory export table and counts
// every call made through the Loader interface.
type fakeLoader struct {
	mu       sync.Mutex
	exports  map[string]map[string]uintptr
	opens    map[string]int
	closed   []uintptr
	byHandle map[uintptr]string
	next     uintptr
	closeErr error
}

func newFakeLoader(exports map[string]map[string]uintptr) *fakeLoader {
	return &fakeLoader{
		exports:  exports,
		opens:    make(map[string]int),
		byHandle: make(map[uintptr]string),
		next:     0x1000,
	}
}

func (l *fakeLoader) Open(name string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.opens[name]++
	if _, ok := l.exports[name]; !ok {
		return 0, fmt.Errorf("%s: cannot open shared object file", name)
	}
	l.next += 0x100
	l.byHandle[l.next] = name
	return l.next, nil
}

func (l *fakeLoader) Symbol(handle uintptr, name string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lib, ok := l.byHandle[handle]
	if !ok {
		return 0, fmt.Errorf("invalid handle %#x", handle)
	}
	addr, ok := l.exports[lib][name]
	if !ok {
		return 0, fmt.Errorf("%s: undefined symbol: %s", lib, name)
	}
	return addr, nil
}

func (l *fakeLoader) Close(handle uintptr) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = append(l.closed, handle)
	delete(l.byHandle, handle)
	return l.closeErr
}

func (l *fakeLoader) openCount(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.opens[name]
}

func (l *fakeLoader) totalOpens() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	total := 0
	for _, n := range l.opens {
		total += n
	}
	return total
}

func (l *fakeLoader) closeCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.closed)
}
