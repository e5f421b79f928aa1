//go:build windows

package native

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

func loadLibrary(name string) (uintptr, error) {
	handle, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, errors.Wrapf(err, "LoadLibrary %s", name)
	}
	if handle == 0 {
		return 0, errors.Errorf("LoadLibrary returned a nil handle for %s", name)
	}
	return uintptr(handle), nil
}

func getSymbol(handle uintptr, symbol string) (uintptr, error) {
	proc, err := windows.GetProcAddress(windows.Handle(handle), symbol)
	if err != nil {
		return 0, errors.Wrapf(err, "GetProcAddress %s", symbol)
	}
	return proc, nil
}

func closeLibrary(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(handle))
}
