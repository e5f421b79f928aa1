package native

import "sync"

var (
	defaultMu     sync.Mutex
	defaultBinder *Binder
)

// Default returns the process-wide binder, creating it on first use with the
// host platform and SystemLoader.
func Default() (*Binder, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultBinder != nil {
		return defaultBinder, nil
	}
	b, err := NewBinder()
	if err != nil {
		return nil, err
	}
	defaultBinder = b
	return defaultBinder, nil
}

// BindAll binds m with the process-wide binder. Call it once from the
// consuming package's initialization, before the bound functions are used.
func BindAll(m Manifest) error {
	b, err := Default()
	if err != nil {
		return err
	}
	return b.BindAll(m)
}

// Bind resolves a single request with the process-wide binder.
func Bind(identifier string, req BindingRequest) (Binding, error) {
	b, err := Default()
	if err != nil {
		return Binding{Identifier: identifier}, err
	}
	return b.Bind(identifier, req)
}

// FreeAll unloads every library loaded by the process-wide binder. It is safe
// to call more than once, and before anything was bound.
func FreeAll() {
	defaultMu.Lock()
	b := defaultBinder
	defaultMu.Unlock()

	if b != nil {
		b.FreeAll()
	}
}
