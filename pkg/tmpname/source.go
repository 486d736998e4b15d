package tmpname

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
)

// CandidateSource produces tentative unique names. The generator trusts only
// the presence and the length of the result, never its content.
type CandidateSource interface {
	Candidate(ctx context.Context) Candidate
}

// SourceFunc adapts a function to the CandidateSource interface.
type SourceFunc func(ctx context.Context) Candidate

func (f SourceFunc) Candidate(ctx context.Context) Candidate {
	return f(ctx)
}

// Defaults for FSSource, matching tmpnam on glibc.
const (
	DefaultDir      = "/tmp"
	DefaultPrefix   = "file"
	DefaultAttempts = DefaultMaxNames
	suffixLen       = 6
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// FSSource generates "<Dir>/<Prefix>XXXXXX" names and probes the filesystem
// until it finds one that does not exist. The name is not reserved: another
// process may create it before the caller does.
type FSSource struct {
	// Dir is the directory names are placed in. Default: /tmp.
	Dir string

	// Prefix precedes the random suffix. Default: "file".
	Prefix string

	// Attempts bounds the number of probes per call. Default: 238328.
	Attempts int

	// Rand supplies randomness. Default: crypto/rand.Reader.
	Rand io.Reader
}

// NewFSSource returns an FSSource with tmpnam defaults.
func NewFSSource() *FSSource {
	return &FSSource{
		Dir:      DefaultDir,
		Prefix:   DefaultPrefix,
		Attempts: DefaultAttempts,
	}
}

func (s *FSSource) Candidate(ctx context.Context) Candidate {
	dir, prefix, attempts := s.Dir, s.Prefix, s.Attempts
	if dir == "" {
		dir = DefaultDir
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if attempts <= 0 {
		attempts = DefaultAttempts
	}

	info, err := os.Stat(dir)
	if err != nil {
		return NotFound(errnoOf(err))
	}
	if !info.IsDir() {
		return NotFound(syscall.ENOTDIR)
	}

	suffix := make([]byte, suffixLen)
	for range attempts {
		if err := ctx.Err(); err != nil {
			return NotFound(err)
		}
		if err := s.randomSuffix(suffix); err != nil {
			return NotFound(err)
		}

		name := filepath.Join(dir, prefix+string(suffix))
		_, err := os.Lstat(name)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return Found(name)
		case err == nil:
			continue
		default:
			return NotFound(errnoOf(err))
		}
	}

	return NotFound(syscall.EEXIST)
}

// maxUnbiased is the largest multiple of len(letters) that fits in a byte.
// Bytes at or above it are dropped so every letter is equally likely.
const maxUnbiased = 256 - 256%len(letters)

// maxReads bounds the reads spent filling one suffix.
const maxReads = 16

func (s *FSSource) randomSuffix(dst []byte) error {
	var r io.Reader = rand.Reader
	if s.Rand != nil {
		r = s.Rand
	}

	var chunk [2 * suffixLen]byte
	i := 0
	for range maxReads {
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			return err
		}
		for _, b := range chunk {
			if int(b) >= maxUnbiased {
				continue
			}
			dst[i] = letters[int(b)%len(letters)]
			i++
			if i == len(dst) {
				return nil
			}
		}
	}
	return io.ErrNoProgress
}

// UUIDSource generates "<Dir>/<Prefix><uuid>" names. They are 36 bytes plus
// the directory, so Limits.MaxNameLen must be raised to use it. An empty Dir
// means DefaultDir, as for FSSource.
type UUIDSource struct {
	Dir    string
	Prefix string
}

func (s UUIDSource) Candidate(_ context.Context) Candidate {
	id, err := uuid.NewRandom()
	if err != nil {
		return NotFound(err)
	}
	dir := s.Dir
	if dir == "" {
		dir = DefaultDir
	}
	return Found(filepath.Join(dir, s.Prefix+id.String()))
}

// errnoOf extracts the platform error code from a filesystem error.
func errnoOf(err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return err
}
