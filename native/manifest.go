package native

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Entry pairs a binding request with the slot that receives its address.
//
// Target must be one of *uintptr, *Function, *unsafe.Pointer, or a pointer
// to a func variable. Func variables are made callable with
// purego.RegisterFunc; an unresolved optional binding sets them to nil.
type Entry struct {
	Identifier string
	Request    BindingRequest
	Target     any
}

// Manifest is an ordered list of bindings, processed front to back.
type Manifest []Entry

// Validate checks every target before anything is loaded. A destination may
// appear only once per manifest.
func (m Manifest) Validate() error {
	seen := make(map[uintptr]string, len(m))
	for i, entry := range m {
		addr, err := targetAddress(entry.Target)
		if err != nil {
			return invalidRequest("entry %d (%s): %v", i, entry.Identifier, err)
		}
		if prev, ok := seen[addr]; ok {
			return invalidRequest("entry %d (%s): destination already used by %s", i, entry.Identifier, prev)
		}
		seen[addr] = entry.Identifier
	}
	return nil
}

func targetAddress(target any) (uintptr, error) {
	switch t := target.(type) {
	case nil:
		return 0, fmt.Errorf("nil target")
	case *uintptr, *Function, *unsafe.Pointer:
		v := reflect.ValueOf(t)
		if v.IsNil() {
			return 0, fmt.Errorf("nil %T target", t)
		}
		return v.Pointer(), nil
	}

	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.Type().Elem().Kind() != reflect.Func {
		return 0, fmt.Errorf("unsupported target type %T", target)
	}
	if v.IsNil() {
		return 0, fmt.Errorf("nil %T target", target)
	}
	return v.Pointer(), nil
}

func (e Entry) store(fn Function) (err error) {
	switch t := e.Target.(type) {
	case *uintptr:
		*t = uintptr(fn)
		return nil
	case *Function:
		*t = fn
		return nil
	case *unsafe.Pointer:
		*t = fn.Pointer()
		return nil
	}

	slot := reflect.ValueOf(e.Target).Elem()
	if fn.IsNil() {
		slot.Set(reflect.Zero(slot.Type()))
		return nil
	}

	// RegisterFunc panics on signatures it cannot call.
	defer func() {
		if r := recover(); r != nil {
			err = invalidRequest("%s: cannot register %s: %v", e.Identifier, slot.Type(), r)
		}
	}()
	purego.RegisterFunc(e.Target, uintptr(fn))
	return nil
}
