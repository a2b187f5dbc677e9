// Package registry provides a global registry of course builders.
// Each movement mode registers the function that lays out its courses,
// allowing the catalog and CLI to look modes up without hardcoded switches.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/dashcourse/internal/course"
)

// Builder generates a course for one movement mode.
// Method expressions such as (*course.Generator).Gravity satisfy it.
type Builder func(g *course.Generator, difficulty int, length float64, m course.Motion) course.Course

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	Mode  course.Mode
	Title string
}

type entry struct {
	title   string
	builder Builder
}

var (
	builders = make(map[course.Mode]entry)
	mu       sync.RWMutex
)

// Register adds a mode builder to the registry.
// Typically called from an init() function.
// Panics if the mode is already registered.
func Register(mode course.Mode, title string, b Builder) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := builders[mode]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", mode))
	}
	builders[mode] = entry{title: title, builder: b}
}

// List returns information about all registered modes, sorted by mode.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(builders))
	for mode, e := range builders {
		result = append(result, ModeInfo{Mode: mode, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Mode < result[j].Mode
	})
	return result
}

// Lookup returns the builder for a mode.
// Returns an error if the mode is not registered.
func Lookup(mode course.Mode) (Builder, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := builders[mode]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", mode)
	}
	return e.builder, nil
}

// Title returns the display name of a mode, or the mode itself if unknown.
func Title(mode course.Mode) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := builders[mode]; ok {
		return e.title
	}
	return string(mode)
}

// Exists checks if a mode is registered.
func Exists(mode course.Mode) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := builders[mode]
	return ok
}
