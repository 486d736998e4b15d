package tmpname_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/dmitrymomot/safetmp/pkg/report"
	"github.com/dmitrymomot/safetmp/pkg/tmpname"
)

// expectedCode is an independent model of the check order.
func expectedCode(limits tmpname.Limits, buf []byte, capacity int, used uint64, c tmpname.Candidate) tmpname.Code {
	switch {
	case buf == nil:
		return tmpname.NullArgument
	case capacity <= 0:
		return tmpname.ZeroLength
	case capacity > limits.MaxStringSize, capacity > limits.MaxNameLen, capacity > len(buf):
		return tmpname.CapacityExceeded
	case used+1 > limits.MaxNames:
		return tmpname.ResourceExhausted
	case !c.OK:
		return tmpname.GeneratorFailed
	case len(c.Name) >= capacity:
		return tmpname.BufferTooSmall
	case len(c.Name) > limits.MaxNameLen:
		return tmpname.CapacityExceeded
	case c.Name == "":
		return tmpname.GeneratorFailed
	default:
		return tmpname.Success
	}
}

func TestProperty_OutcomeMatchesModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		limits := tmpname.Limits{
			MaxStringSize: rapid.IntRange(1, 64).Draw(t, "maxStringSize"),
			MaxNameLen:    rapid.IntRange(1, 64).Draw(t, "maxNameLen"),
			MaxNames:      rapid.Uint64Range(1, 5).Draw(t, "maxNames"),
			ZeroTail:      rapid.Bool().Draw(t, "zeroTail"),
		}

		var buf []byte
		if !rapid.Bool().Draw(t, "nilBuffer") {
			buf = bytes.Repeat([]byte{0xAA}, rapid.IntRange(0, 80).Draw(t, "bufLen"))
		}
		capacity := rapid.IntRange(-4, 80).Draw(t, "capacity")

		candidate := tmpname.NotFound(nil)
		if rapid.Bool().Draw(t, "sourceOK") {
			candidate = tmpname.Found(strings.Repeat("n", rapid.IntRange(0, 80).Draw(t, "nameLen")))
		}

		rec := report.NewRecorder()
		g := tmpname.NewGenerator(
			tmpname.WithLimits(limits),
			tmpname.WithSource(tmpname.SourceFunc(func(_ context.Context) tmpname.Candidate { return candidate })),
			tmpname.WithReporter(rec),
		)
		used := rapid.Uint64Range(0, limits.MaxNames).Draw(t, "used")
		for range used {
			g.Budget().Take()
		}

		want := expectedCode(limits, buf, capacity, used, candidate)
		err := g.Generate(buf, capacity)
		got := tmpname.CodeOf(err)
		if got != want {
			t.Fatalf("code: got %v, want %v (err=%v)", got, want, err)
		}

		if want == tmpname.Success {
			if rec.Len() != 0 {
				t.Fatalf("success must not report, got %d reports", rec.Len())
			}
			name := tmpname.Name(buf)
			if name != candidate.Name {
				t.Fatalf("name: got %q, want %q", name, candidate.Name)
			}
			if len(name) == 0 || len(name) >= capacity || len(name) > limits.MaxNameLen {
				t.Fatalf("name length %d out of bounds (capacity %d, max %d)", len(name), capacity, limits.MaxNameLen)
			}
			if limits.ZeroTail && !bytes.Equal(buf[len(name):capacity], make([]byte, capacity-len(name))) {
				t.Fatalf("tail not zeroed: %v", buf[len(name):capacity])
			}
			for i := capacity; i < len(buf); i++ {
				if buf[i] != 0xAA {
					t.Fatalf("byte %d past capacity was written", i)
				}
			}
			return
		}

		if rec.Len() != 1 {
			t.Fatalf("failure must report exactly once, got %d", rec.Len())
		}
		if last, _ := rec.Last(); last.Code != want {
			t.Fatalf("reported code %v, want %v", last.Code, want)
		}

		usable := len(buf) > 0 && capacity > 0
		if usable && buf[0] != tmpname.Terminator {
			t.Fatalf("byte 0 not cleared on %v", want)
		}
		if !usable && len(buf) > 0 && buf[0] != 0xAA {
			t.Fatalf("buffer written on %v", want)
		}
		for i := 1; i < len(buf); i++ {
			if buf[i] != 0xAA {
				t.Fatalf("byte %d written on failure %v", i, want)
			}
		}
	})
}

func TestProperty_BudgetIsMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxNames := rapid.Uint64Range(1, 20).Draw(t, "maxNames")
		calls := rapid.IntRange(0, 40).Draw(t, "calls")

		g := tmpname.NewGenerator(
			tmpname.WithLimits(tmpname.Limits{MaxNames: maxNames}),
			tmpname.WithSource(tmpname.SourceFunc(func(context.Context) tmpname.Candidate { return tmpname.Found("x") })),
			tmpname.WithReporter(report.Ignore()),
		)

		seenExhausted := false
		for i := range calls {
			err := g.Generate(make([]byte, 4), 4)
			exhausted := tmpname.CodeOf(err) == tmpname.ResourceExhausted
			if seenExhausted && !exhausted {
				t.Fatalf("call %d succeeded after exhaustion", i+1)
			}
			if exhausted != (uint64(i+1) > maxNames) {
				t.Fatalf("call %d: exhausted=%v with max %d", i+1, exhausted, maxNames)
			}
			seenExhausted = seenExhausted || exhausted
		}
		if g.Budget().Used() != uint64(calls) {
			t.Fatalf("used %d, want %d", g.Budget().Used(), calls)
		}
	})
}
