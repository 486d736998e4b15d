package tmpname

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure Code. Compare with errors.Is.
var (
	ErrNullArgument      = errors.New("tmpname.errors.null_argument")
	ErrZeroLength        = errors.New("tmpname.errors.zero_length")
	ErrCapacityExceeded  = errors.New("tmpname.errors.capacity_exceeded")
	ErrResourceExhausted = errors.New("tmpname.errors.resource_exhausted")
	ErrBufferTooSmall    = errors.New("tmpname.errors.buffer_too_small")
	ErrGeneratorFailed   = errors.New("tmpname.errors.generator_failed")
)

// Static diagnostic messages passed to the Reporter.
const (
	msgNullBuffer     = "tmpname: buffer is nil"
	msgZeroCapacity   = "tmpname: capacity is 0"
	msgCapacityMax    = "tmpname: capacity exceeds max"
	msgCapacityBuffer = "tmpname: capacity exceeds buffer length"
	msgExhausted      = "tmpname: exceeds max names"
	msgLengthSize     = "tmpname: length exceeds size"
	msgLengthMax      = "tmpname: length exceeds max name length"
	msgSourceFailed   = "tmpname: candidate source failed"
	msgEmptyCandidate = "tmpname: candidate is empty"
)

func sentinel(c Code) error {
	switch c {
	case NullArgument:
		return ErrNullArgument
	case ZeroLength:
		return ErrZeroLength
	case CapacityExceeded:
		return ErrCapacityExceeded
	case ResourceExhausted:
		return ErrResourceExhausted
	case BufferTooSmall:
		return ErrBufferTooSmall
	case GeneratorFailed:
		return ErrGeneratorFailed
	default:
		return nil
	}
}

// Error is returned by Generate on every failure path.
type Error struct {
	Code    Code
	Message string
	// Cause is the platform error code from the candidate source, if any.
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Is matches the sentinel error of the code.
func (e *Error) Is(target error) bool {
	s := sentinel(e.Code)
	return s != nil && s == target
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf maps a Generate result to its Code. A nil error is Success;
// errors not produced by this package report GeneratorFailed.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return GeneratorFailed
}
