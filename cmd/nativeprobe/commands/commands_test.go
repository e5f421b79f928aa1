package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amikos-tech/pure-native/native"
)

func writeManifest(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bindings.toml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlatformCommand(t *testing.T) {
	out, err := execute(t, "platform", "--platform", "darwin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "mac" {
		t.Fatalf("expected mac, got %q", out)
	}

	if _, err := execute(t, "platform", "--platform", "linux,mac"); err == nil {
		t.Fatal("expected error for multi-platform override")
	}
}

func TestCheckSkipsOtherPlatforms(t *testing.T) {
	path := writeManifest(t, `
[[function]]
name = "Foo"
platforms = ["linux", "mac"]
libraries = ["libexample.so", "libexample.dylib"]
`)

	out, err := execute(t, "check", path, "--platform", "windows")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Foo") || !strings.Contains(out, "skipped") {
		t.Fatalf("expected Foo to be reported as skipped, got:\n%s", out)
	}
}

func TestCheckReportsMissingRequired(t *testing.T) {
	path := writeManifest(t, `
[[function]]
name = "Bar"
libraries = ["libpure_native_does_not_exist"]

[[function]]
name = "Baz"
libraries = ["libpure_native_does_not_exist"]
required = false
`)

	out, err := execute(t, "check", path, "--platform", "linux")
	if !errors.Is(err, ErrRequiredMissing) {
		t.Fatalf("expected ErrRequiredMissing, got %v", err)
	}
	if !strings.Contains(out, "missing") || !strings.Contains(out, "unresolved") {
		t.Fatalf("expected missing and unresolved rows, got:\n%s", out)
	}
}

func TestCheckFailFast(t *testing.T) {
	path := writeManifest(t, `
[[function]]
name = "Bar"
libraries = ["libpure_native_does_not_exist"]
`)

	_, err := execute(t, "check", path, "--platform", "linux", "--fail-fast")
	if !errors.Is(err, native.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCheckInvalidManifest(t *testing.T) {
	path := writeManifest(t, "[[function]]\nname = \"a\"\n")
	if _, err := execute(t, "check", path, "--platform", "linux"); err == nil {
		t.Fatal("expected error for manifest without libraries")
	}
}
