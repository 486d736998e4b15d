package report

import (
	"context"
	"sync"

	"github.com/dmitrymomot/safetmp/pkg/tmpname"
)

// Entry is one captured report. Capacity, Used and Name are set only for
// reports that came with violation details.
type Entry struct {
	Message  string
	Code     tmpname.Code
	Capacity int
	Used     uint64
	Name     string
}

// Recorder captures reports in memory. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

var _ tmpname.ContextReporter = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Report(message string, code tmpname.Code) {
	r.add(Entry{Message: message, Code: code})
}

func (r *Recorder) ReportContext(_ context.Context, v tmpname.Violation) {
	r.add(Entry{
		Message:  v.Message,
		Code:     v.Code,
		Capacity: v.Capacity,
		Used:     v.Used,
		Name:     v.Name,
	})
}

func (r *Recorder) add(e Entry) {
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
}

// Entries returns a copy of the captured reports.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of captured reports.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Last returns the most recent report.
func (r *Recorder) Last() (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[len(r.entries)-1], true
}

// Codes returns the captured codes in order.
func (r *Recorder) Codes() []tmpname.Code {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]tmpname.Code, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Code
	}
	return out
}

// Reset drops all captured reports.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}
