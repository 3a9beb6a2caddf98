package blit

import (
	"fmt"
	"slices"
	"sync"

	"github.com/BeatGlow/blit/pixel"
)

// Platform names a presentation backend in the format registry.
type Platform string

type capability struct {
	native    pixel.Format
	supported []pixel.Format
}

var (
	capabilitiesMu sync.RWMutex
	capabilities   = map[Platform]capability{}
)

// Declare registers the formats a platform can present. The native format is the one the
// platform's blit path takes without any conversion; the other formats are presented through an
// explicit channel swizzle. Backends call Declare from their init function.
//
// Declare panics if the platform was declared before or a format is invalid.
func Declare(p Platform, native pixel.Format, supported ...pixel.Format) {
	if !native.Valid() {
		panic(fmt.Sprintf("blit: invalid native format %s for %s", native, p))
	}
	c := capability{native: native, supported: []pixel.Format{native}}
	for _, f := range supported {
		if !f.Valid() {
			panic(fmt.Sprintf("blit: invalid format %s for %s", f, p))
		}
		if !slices.Contains(c.supported, f) {
			c.supported = append(c.supported, f)
		}
	}

	capabilitiesMu.Lock()
	defer capabilitiesMu.Unlock()
	if _, dup := capabilities[p]; dup {
		panic("blit: Declare called twice for platform " + string(p))
	}
	capabilities[p] = c
}

// NativeFormat returns the native format of a declared platform.
func NativeFormat(p Platform) (pixel.Format, bool) {
	capabilitiesMu.RLock()
	defer capabilitiesMu.RUnlock()
	c, ok := capabilities[p]
	return c.native, ok
}

// Supports reports if the platform declared the format.
func Supports(p Platform, f pixel.Format) bool {
	capabilitiesMu.RLock()
	defer capabilitiesMu.RUnlock()
	return slices.Contains(capabilities[p].supported, f)
}

// Formats returns the declared formats of a platform, native format first.
func Formats(p Platform) []pixel.Format {
	capabilitiesMu.RLock()
	defer capabilitiesMu.RUnlock()
	return slices.Clone(capabilities[p].supported)
}

// Platforms returns the declared platforms, sorted by name.
func Platforms() []Platform {
	capabilitiesMu.RLock()
	defer capabilitiesMu.RUnlock()
	ps := make([]Platform, 0, len(capabilities))
	for p := range capabilities {
		ps = append(ps, p)
	}
	slices.Sort(ps)
	return ps
}

// CheckFormat returns a FormatNotSupported error unless f is the native format of the platform.
func CheckFormat(op string, p Platform, f pixel.Format) error {
	native, ok := NativeFormat(p)
	if !ok {
		return Errorf(op, FormatNotSupported, "platform %q declared no formats", p)
	}
	if f != native {
		return Errorf(op, FormatNotSupported, "%s is not the native %s format %s", f, p, native)
	}
	return nil
}
