package native

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
)

// Platform is a set of operating system families. A binding request carries
// a subset; the running process is always exactly one member.
type Platform uint8

const (
	Windows Platform = 1 << iota
	Mac
	Linux
	BSD

	// AllPlatforms matches every supported operating system family.
	AllPlatforms = Windows | Mac | Linux | BSD
)

var platformNames = []struct {
	p    Platform
	name string
}{
	{Windows, "windows"},
	{Mac, "mac"},
	{Linux, "linux"},
	{BSD, "bsd"},
}

var (
	platformOnce sync.Once
	hostPlatform Platform
	hostErr      error
)

// Has reports whether the single platform p is a member of the set.
func (s Platform) Has(p Platform) bool {
	if p == 0 {
		return false
	}
	return s&p == p
}

func (s Platform) String() string {
	var parts []string
	for _, entry := range platformNames {
		if s.Has(entry.p) {
			parts = append(parts, entry.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParsePlatform parses a comma or pipe separated list of platform names.
// "all" selects every platform.
func ParsePlatform(s string) (Platform, error) {
	var set Platform
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ' '
	})
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty platform list")
	}
	for _, field := range fields {
		p, err := parsePlatformName(field)
		if err != nil {
			return 0, err
		}
		set |= p
	}
	return set, nil
}

func parsePlatformName(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows", "win":
		return Windows, nil
	case "mac", "macos", "osx", "darwin":
		return Mac, nil
	case "linux":
		return Linux, nil
	case "bsd", "freebsd", "openbsd", "netbsd", "dragonfly":
		return BSD, nil
	case "all", "any":
		return AllPlatforms, nil
	default:
		return 0, fmt.Errorf("unknown platform %q", name)
	}
}

// platformForGOOS maps a GOOS value onto its platform family.
func platformForGOOS(goos string) (Platform, error) {
	switch goos {
	case "windows":
		return Windows, nil
	case "darwin":
		return Mac, nil
	case "linux", "android":
		return Linux, nil
	case "freebsd", "openbsd", "netbsd", "dragonfly":
		return BSD, nil
	default:
		return 0, &UnsupportedPlatformError{GOOS: goos}
	}
}

// CurrentPlatform returns the platform family of the running process.
// The host is probed once; the result (or error) is reused afterwards.
func CurrentPlatform() (Platform, error) {
	platformOnce.Do(func() {
		hostPlatform, hostErr = platformForGOOS(runtime.GOOS)
	})
	return hostPlatform, hostErr
}

// MustCurrentPlatform is like CurrentPlatform but panics when the host
// operating system is not supported.
func MustCurrentPlatform() Platform {
	p, err := CurrentPlatform()
	if err != nil {
		panic(err)
	}
	return p
}
