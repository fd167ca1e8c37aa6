package homework

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter selects homeworks by name using glob patterns. An empty include
// list admits everything; exclude patterns win over include patterns.
type Filter struct {
	include []string
	exclude []string
}

// NewFilter validates the patterns and builds a filter.
func NewFilter(include, exclude []string) (*Filter, error) {
	if err := ValidatePatterns(include); err != nil {
		return nil, fmt.Errorf("include: %w", err)
	}
	if err := ValidatePatterns(exclude); err != nil {
		return nil, fmt.Errorf("exclude: %w", err)
	}
	return &Filter{include: include, exclude: exclude}, nil
}

// ValidatePatterns reports the first invalid glob pattern.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid pattern %q", p)
		}
	}
	return nil
}

// Allow reports whether a homework with the given name should be tracked.
func (f *Filter) Allow(name string) bool {
	if f == nil {
		return true
	}

	for _, p := range f.exclude {
		if match(p, name) {
			return false
		}
	}

	if len(f.include) == 0 {
		return true
	}

	for _, p := range f.include {
		if match(p, name) {
			return true
		}
	}
	return false
}

func match(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}
