// Package ids generates identifiers for boards, columns, tickets and
// checklist entries.
package ids

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Generator produces a fresh id for the given prefix (e.g. "col", "tick")
type Generator interface {
	New(prefix string) string
}

// UUID returns a Generator that emits "<prefix>-<uuid v4>"
func UUID() Generator {
	return uuidGenerator{}
}

type uuidGenerator struct{}

func (uuidGenerator) New(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Sequence returns a Generator with one monotonic counter per prefix.
// "col" yields col-1, col-2, ... Useful wherever ids must be predictable.
func Sequence() *SequenceGenerator {
	return &SequenceGenerator{counters: make(map[string]int)}
}

// SequenceGenerator is safe for concurrent use
type SequenceGenerator struct {
	mu       sync.Mutex
	counters map[string]int
}

func (s *SequenceGenerator) New(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[prefix]++
	return prefix + "-" + strconv.Itoa(s.counters[prefix])
}
