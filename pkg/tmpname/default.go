package tmpname

import (
	"bytes"
	"sync"
)

var (
	defaultMu  sync.RWMutex
	defaultGen *Generator
)

// Default returns the process-wide generator, creating it on first use.
func Default() *Generator {
	defaultMu.RLock()
	g := defaultGen
	defaultMu.RUnlock()
	if g != nil {
		return g
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultGen == nil {
		defaultGen = NewGenerator()
	}
	return defaultGen
}

// SetDefault replaces the process-wide generator and returns the previous
// one. Passing nil installs a fresh default generator with a new budget.
func SetDefault(g *Generator) *Generator {
	if g == nil {
		g = NewGenerator()
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultGen
	defaultGen = g
	return prev
}

// Generate runs the process-wide generator. See Generator.Generate.
func Generate(buf []byte, capacity int) error {
	return Default().Generate(buf, capacity)
}

// New generates a name with the process-wide generator into a buffer of
// the maximum name length and returns it as a string.
func New() (string, error) {
	g := Default()
	size := g.limits.MaxNameLen
	buf := make([]byte, size)
	if err := g.Generate(buf, size); err != nil {
		return "", err
	}
	return Name(buf), nil
}

// Name returns the string held in buf up to the first Terminator.
func Name(buf []byte) string {
	if i := bytes.IndexByte(buf, Terminator); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}
