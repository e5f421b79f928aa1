package native

import (
	"errors"
	"sync"
)

var errNilHandle = errors.New("loader returned a nil handle")

// Handle is an opaque reference to a loaded shared library. Valid handles
// are never zero.
type Handle uintptr

// LibraryCache maps library names to loaded handles so that each distinct
// name is loaded at most once. Names are compared as plain strings: two
// spellings of the same file are cached, and loaded, separately.
type LibraryCache struct {
	mu      sync.Mutex
	loader  Loader
	handles map[string]Handle
}

// NewLibraryCache returns an empty cache that loads libraries through loader.
// A nil loader selects SystemLoader.
func NewLibraryCache(loader Loader) *LibraryCache {
	if loader == nil {
		loader = SystemLoader()
	}
	return &LibraryCache{
		loader:  loader,
		handles: make(map[string]Handle),
	}
}

// GetOrLoad walks candidates in order. A name that is already cached is
// returned as is; otherwise the name is loaded and, on success, cached and
// returned. The remaining candidates are not tried. ok is false when no
// candidate could be loaded.
func (c *LibraryCache) GetOrLoad(candidates []string) (handle Handle, name string, ok bool) {
	handle, name, _ = c.getOrLoad(candidates)
	return handle, name, handle != 0
}

func (c *LibraryCache) getOrLoad(candidates []string) (Handle, string, []error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var loadErrs []error
	for _, name := range candidates {
		if handle, ok := c.handles[name]; ok {
			return handle, name, nil
		}

		raw, err := c.loader.Open(name)
		if err == nil && raw == 0 {
			err = errNilHandle
		}
		if err != nil {
			loadErrs = append(loadErrs, &LoadError{Library: name, Err: err})
			continue
		}
		c.handles[name] = Handle(raw)
		return Handle(raw), name, nil
	}
	return 0, "", loadErrs
}

// FreeAll unloads every cached library and empties the cache. Unload errors
// are ignored. Calling FreeAll on an empty cache is a no-op.
func (c *LibraryCache) FreeAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for name, handle := range c.handles {
		_ = c.loader.Close(uintptr(handle))
		delete(c.handles, name)
	}
}

// Len returns the number of cached libraries.
func (c *LibraryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handles)
}

// Contains reports whether name has a cached handle.
func (c *LibraryCache) Contains(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.handles[name]
	return ok
}

func (c *LibraryCache) symbol(handle Handle, name string) (uintptr, error) {
	return c.loader.Symbol(uintptr(handle), name)
}
