// Package manifest reads binding manifests from TOML files.
//
// A manifest file lists one [[function]] table per binding:
//
//	[[function]]
//	name = "strlen"
//	platforms = ["linux", "bsd"]
//	libraries = ["libc.so.6", "libc.so"]
//	required = true
//
// platforms defaults to every platform, symbol defaults to name and
// required defaults to true.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/amikos-tech/pure-native/native"
)

// ErrInvalidManifest is wrapped by every validation error.
var ErrInvalidManifest = errors.New("invalid manifest")

// File is a decoded manifest file.
type File struct {
	Functions []Function `toml:"function"`
}

// Function is a single [[function]] table.
type Function struct {
	Name      string   `toml:"name"`
	Platforms []string `toml:"platforms"`
	Libraries []string `toml:"libraries"`
	Symbol    string   `toml:"symbol"`
	Required  *bool    `toml:"required"`
}

// Named pairs a binding identifier with its request.
type Named struct {
	Identifier string
	Request    native.BindingRequest
}

// Load reads and validates the manifest at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}
	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Parse decodes and validates a manifest. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var file File
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if _, err := file.Requests(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Requests converts every function table into a binding request, in file order.
func (f *File) Requests() ([]Named, error) {
	seen := make(map[string]bool, len(f.Functions))
	requests := make([]Named, 0, len(f.Functions))
	for i, fn := range f.Functions {
		name := strings.TrimSpace(fn.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: function %d has no name", ErrInvalidManifest, i)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: function %q is declared twice", ErrInvalidManifest, name)
		}
		seen[name] = true

		req, err := fn.request()
		if err != nil {
			return nil, fmt.Errorf("%w: function %q: %v", ErrInvalidManifest, name, err)
		}
		requests = append(requests, Named{Identifier: name, Request: req})
	}
	return requests, nil
}

func (fn Function) request() (native.BindingRequest, error) {
	if len(fn.Libraries) == 0 {
		return native.BindingRequest{}, fmt.Errorf("no libraries listed")
	}
	for _, lib := range fn.Libraries {
		if strings.TrimSpace(lib) == "" {
			return native.BindingRequest{}, fmt.Errorf("empty library name")
		}
	}

	platforms := native.AllPlatforms
	if len(fn.Platforms) > 0 {
		parsed, err := native.ParsePlatform(strings.Join(fn.Platforms, ","))
		if err != nil {
			return native.BindingRequest{}, err
		}
		platforms = parsed
	}

	req := native.Request(platforms, fn.Libraries...).WithSymbol(strings.TrimSpace(fn.Symbol))
	if fn.Required != nil && !*fn.Required {
		req = req.Optional()
	}
	return req, nil
}

// Manifest builds a native.Manifest, taking each destination from targets by
// function name. Every function needs a target.
func (f *File) Manifest(targets map[string]any) (native.Manifest, error) {
	requests, err := f.Requests()
	if err != nil {
		return nil, err
	}
	m := make(native.Manifest, 0, len(requests))
	for _, r := range requests {
		target, ok := targets[r.Identifier]
		if !ok {
			return nil, fmt.Errorf("%w: no destination for function %q", ErrInvalidManifest, r.Identifier)
		}
		m = append(m, native.Entry{Identifier: r.Identifier, Request: r.Request, Target: target})
	}
	return m, nil
}

// Slots builds a native.Manifest that stores every function into a fresh
// native.Function, returned by name.
func (f *File) Slots() (native.Manifest, map[string]*native.Function, error) {
	requests, err := f.Requests()
	if err != nil {
		return nil, nil, err
	}
	slots := make(map[string]*native.Function, len(requests))
	targets := make(map[string]any, len(requests))
	for _, r := range requests {
		slot := new(native.Function)
		slots[r.Identifier] = slot
		targets[r.Identifier] = slot
	}
	m, err := f.Manifest(targets)
	if err != nil {
		return nil, nil, err
	}
	return m, slots, nil
}
