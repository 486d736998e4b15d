// Package tmpname generates unique temporary file names into caller-owned
// byte buffers, with the defensive contract of the bounds-checked tmpnam_s
// primitive: it either writes a complete, terminated name that fits the
// declared capacity, or it fails with a precise Code and leaves the buffer
// holding an empty string.
//
// # Contract
//
// A call takes a buffer and a declared capacity (terminator included) and
// runs a fixed pipeline. The first failing step wins:
//
//  1. nil buffer                              -> NullArgument
//  2. capacity <= 0                           -> ZeroLength
//  3. capacity over MaxStringSize, MaxNameLen
//     or len(buf)                             -> CapacityExceeded
//  4. call budget exhausted                   -> ResourceExhausted
//  5. candidate source returned nothing       -> GeneratorFailed
//  6. candidate does not fit capacity         -> BufferTooSmall
//  7. candidate longer than MaxNameLen        -> CapacityExceeded
//
// Every failure is reported exactly once through the Reporter before the
// call returns. From step 3 on, a failure leaves buf[0] == Terminator. On
// success the unused tail of the buffer is zeroed when Limits.ZeroTail is
// set. Nothing is retried internally.
//
// The call budget is consumed by every call that reaches step 4, whatever
// its outcome, and is never given back: once MaxNames calls have been made
// the Generator fails with ResourceExhausted for the rest of its life.
//
// # Usage
//
//	buf := make([]byte, tmpname.DefaultMaxNameLen)
//	if err := tmpname.Generate(buf, len(buf)); err != nil {
//	    switch {
//	    case errors.Is(err, tmpname.ErrResourceExhausted):
//	        // no more names in this process
//	    default:
//	        return err
//	    }
//	}
//	path := tmpname.Name(buf)
//
// Tests and services that need isolated budgets build their own generator:
//
//	g := tmpname.NewGenerator(
//	    tmpname.WithLimits(tmpname.Limits{MaxNames: 10, ZeroTail: true}),
//	    tmpname.WithSource(src),
//	    tmpname.WithReporter(rec),
//	)
//
// # Caveat
//
// A generated name is unused only at the moment it was probed. Another
// process can create the same path before the caller does; use os.CreateTemp
// when the file itself is what you need.
package tmpname
