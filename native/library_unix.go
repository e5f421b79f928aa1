//go:build !windows

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func loadLibrary(name string) (uintptr, error) {
	libHandle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	if libHandle == 0 {
		return 0, fmt.Errorf("dlopen returned a nil handle for %s", name)
	}
	return libHandle, nil
}

func getSymbol(handle uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(handle, symbol)
}

func closeLibrary(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return purego.Dlclose(handle)
}
