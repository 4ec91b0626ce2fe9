// Package fresh hands out process-unique identifiers from an explicit
// source object instead of a package-level counter, so tests can start
// every case from a clean sequence.
package fresh

import (
	"strconv"
	"sync/atomic"
)

// Source generates monotonically increasing identifiers.
// The zero value is ready to use.
type Source struct {
	prefix string
	next   atomic.Uint64
}

// New creates a Source whose string IDs start with prefix.
func New(prefix string) *Source {
	return &Source{prefix: prefix}
}

// Int returns the next numeric identifier, starting at 1.
func (s *Source) Int() uint64 {
	return s.next.Add(1)
}

// ID returns the next identifier formatted as prefix + number.
func (s *Source) ID() string {
	return s.prefix + strconv.FormatUint(s.Int(), 10)
}

// Last returns the most recently issued numeric identifier.
func (s *Source) Last() uint64 {
	return s.next.Load()
}
