package native

// Loader is the operating system boundary: load a library by name from the
// standard search path, look up an exported symbol and unload the library.
type Loader interface {
	Open(name string) (uintptr, error)
	Symbol(handle uintptr, name string) (uintptr, error)
	Close(handle uintptr) error
}

type systemLoader struct{}

// SystemLoader returns the Loader backed by the host dynamic linker
// (dlopen/dlsym/dlclose, or LoadLibrary/GetProcAddress/FreeLibrary on Windows).
func SystemLoader() Loader {
	return systemLoader{}
}

func (systemLoader) Open(name string) (uintptr, error) {
	return loadLibrary(name)
}

func (systemLoader) Symbol(handle uintptr, name string) (uintptr, error) {
	return getSymbol(handle, name)
}

func (systemLoader) Close(handle uintptr) error {
	return closeLibrary(handle)
}
