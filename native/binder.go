package native

import (
	"slices"
	"strings"
)

// BindingRequest describes which symbol to resolve, from which candidate
// libraries, on which platforms, and whether its absence is fatal.
type BindingRequest struct {
	// Platforms the binding applies to. On any other platform the binding is
	// skipped and its destination is left untouched.
	Platforms Platform
	// Libraries are tried in order; the first one that is cached or loads wins.
	Libraries []string
	// Symbol overrides the binding identifier as the exported name.
	Symbol string
	// Required turns an unresolved symbol into a NotFoundError.
	Required bool
}

// Request returns a required binding request for the given platforms and
// candidate libraries.
func Request(platforms Platform, libraries ...string) BindingRequest {
	return BindingRequest{
		Platforms: platforms,
		Libraries: slices.Clone(libraries),
		Required:  true,
	}
}

// Optional returns a copy of r whose absence is not an error.
func (r BindingRequest) Optional() BindingRequest {
	r.Required = false
	return r
}

// WithSymbol returns a copy of r that resolves name instead of the identifier.
func (r BindingRequest) WithSymbol(name string) BindingRequest {
	r.Symbol = name
	return r
}

func (r BindingRequest) symbolFor(identifier string) (string, error) {
	if len(r.Libraries) == 0 {
		return "", invalidRequest("%s: no candidate libraries", identifier)
	}
	for _, lib := range r.Libraries {
		if strings.TrimSpace(lib) == "" {
			return "", invalidRequest("%s: empty library name", identifier)
		}
	}
	symbol := r.Symbol
	if symbol == "" {
		symbol = identifier
	}
	if symbol == "" {
		return "", invalidRequest("binding has neither an identifier nor a symbol name")
	}
	return symbol, nil
}

// Binding is the outcome of a single bind.
type Binding struct {
	Identifier string
	Symbol     string
	// Library is the candidate name the symbol was looked up in, empty if
	// none loaded.
	Library string
	Address Function
	// Skipped is set when the request does not apply to the current platform.
	Skipped bool
}

// Binder resolves binding requests against a LibraryCache.
type Binder struct {
	platform Platform
	cache    *LibraryCache
	resolver *SymbolResolver
}

// NewBinder creates a Binder. Without options it detects the host platform
// and owns a cache backed by SystemLoader; it fails with
// ErrUnsupportedPlatform on an unknown operating system.
func NewBinder(opts ...Option) (*Binder, error) {
	cfg, err := resolveBinderConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Binder{
		platform: cfg.platform,
		cache:    cfg.cache,
		resolver: NewSymbolResolver(cfg.cache),
	}, nil
}

// Platform returns the platform bindings are checked against.
func (b *Binder) Platform() Platform {
	return b.platform
}

// Cache returns the binder's library cache.
func (b *Binder) Cache() *LibraryCache {
	return b.cache
}

// Bind resolves one request. identifier names the binding and is the symbol
// looked up unless req.Symbol is set.
//
// A request for another platform returns a skipped Binding without touching
// any library. An unresolved optional request returns a Binding with a nil
// Address and no error.
func (b *Binder) Bind(identifier string, req BindingRequest) (Binding, error) {
	symbol, err := req.symbolFor(identifier)
	if err != nil {
		return Binding{Identifier: identifier}, err
	}

	result := Binding{Identifier: identifier, Symbol: symbol}
	if !req.Platforms.Has(b.platform) {
		result.Skipped = true
		return result, nil
	}

	handle, library, loadErrs := b.cache.getOrLoad(req.Libraries)
	if handle != 0 {
		result.Library = library
		if fn, ok := b.resolver.Resolve(handle, symbol); ok {
			result.Address = fn
			return result, nil
		}
	}

	if req.Required {
		return result, &NotFoundError{
			Libraries:  slices.Clone(req.Libraries),
			Symbol:     symbol,
			LoadErrors: loadErrs,
		}
	}
	return result, nil
}

// BindAll binds every manifest entry in order and writes each resolved
// address into the entry's target. It stops at the first error; entries
// after it are not processed. Skipped entries keep their prior value.
func (b *Binder) BindAll(m Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}
	for _, entry := range m {
		binding, err := b.Bind(entry.Identifier, entry.Request)
		if err != nil {
			return err
		}
		if binding.Skipped {
			continue
		}
		if err := entry.store(binding.Address); err != nil {
			return err
		}
	}
	return nil
}

// FreeAll unloads every library in the binder's cache.
func (b *Binder) FreeAll() {
	b.cache.FreeAll()
}
