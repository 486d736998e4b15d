package tmpname

// Code is the outcome of a single Generate call.
type Code int

// Outcome codes, in priority order of detection.
const (
	Success Code = iota
	NullArgument
	ZeroLength
	CapacityExceeded
	ResourceExhausted
	BufferTooSmall
	GeneratorFailed
)

var codeNames = [...]string{
	Success:           "success",
	NullArgument:      "null_argument",
	ZeroLength:        "zero_length",
	CapacityExceeded:  "capacity_exceeded",
	ResourceExhausted: "resource_exhausted",
	BufferTooSmall:    "buffer_too_small",
	GeneratorFailed:   "generator_failed",
}

// String returns the snake_case name of the code.
func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return "unknown"
	}
	return codeNames[c]
}

// Terminator marks the end of the name written into the output buffer.
const Terminator byte = 0

// Platform defaults (glibc values).
const (
	// DefaultMaxStringSize is the largest capacity any string function accepts (RSIZE_MAX_STR).
	DefaultMaxStringSize = 4 << 10
	// DefaultMaxNameLen is the longest temp name the platform produces (L_tmpnam_s).
	DefaultMaxNameLen = 20
	// DefaultMaxNames is the number of names obtainable in one process (TMP_MAX_S).
	DefaultMaxNames = 238328
)

// Limits holds the constants the generator validates against.
type Limits struct {
	// MaxStringSize caps the declared capacity.
	MaxStringSize int

	// MaxNameLen caps both the declared capacity and the candidate length.
	MaxNameLen int

	// MaxNames is the call budget of a Generator.
	MaxNames uint64

	// ZeroTail zeroes the unused part of the buffer on success.
	ZeroTail bool
}

// DefaultLimits returns the glibc-compatible limits with tail zeroing enabled.
func DefaultLimits() Limits {
	return Limits{
		MaxStringSize: DefaultMaxStringSize,
		MaxNameLen:    DefaultMaxNameLen,
		MaxNames:      DefaultMaxNames,
		ZeroTail:      true,
	}
}

// merge fills zero fields from defaults.
func (l Limits) merge(defaults Limits) Limits {
	if l.MaxStringSize <= 0 {
		l.MaxStringSize = defaults.MaxStringSize
	}
	if l.MaxNameLen <= 0 {
		l.MaxNameLen = defaults.MaxNameLen
	}
	if l.MaxNames == 0 {
		l.MaxNames = defaults.MaxNames
	}
	return l
}

// Candidate is the tagged result of a CandidateSource call.
// Name is meaningful only when OK is true; Errno is an optional
// platform error code that explains a failure.
type Candidate struct {
	Name  string
	OK    bool
	Errno error
}

// Found wraps a generated name.
func Found(name string) Candidate {
	return Candidate{Name: name, OK: true}
}

// NotFound reports that no name could be produced. errno may be nil.
func NotFound(errno error) Candidate {
	return Candidate{Errno: errno}
}
