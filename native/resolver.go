package native

import "unsafe"

// Function is the address of a resolved symbol. The zero value means the
// symbol was not resolved.
type Function uintptr

// IsNil reports whether the function was left unresolved.
func (f Function) IsNil() bool {
	return f == 0
}

// Pointer returns the address as an unsafe.Pointer for APIs that take one.
func (f Function) Pointer() unsafe.Pointer {
	// #nosec G103 -- f is a code address inside a loaded library, not Go memory.
	return *(*unsafe.Pointer)(unsafe.Pointer(&f))
}

// SymbolResolver looks up exported symbols in libraries held by a LibraryCache.
type SymbolResolver struct {
	cache *LibraryCache
}

// NewSymbolResolver returns a resolver that uses cache's loader.
func NewSymbolResolver(cache *LibraryCache) *SymbolResolver {
	return &SymbolResolver{cache: cache}
}

// Resolve returns the address of symbol in the library referenced by handle.
// A symbol the library does not export is reported with ok == false.
func (r *SymbolResolver) Resolve(handle Handle, symbol string) (fn Function, ok bool) {
	if handle == 0 || symbol == "" {
		return 0, false
	}
	addr, err := r.cache.symbol(handle, symbol)
	if err != nil || addr == 0 {
		return 0, false
	}
	return Function(addr), true
}
