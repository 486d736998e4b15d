package tmpname

import "sync/atomic"

// Budget counts generation attempts against a fixed maximum.
// Once exhausted it stays exhausted: the counter is never rolled back.
type Budget struct {
	max   uint64
	count atomic.Uint64
}

// NewBudget returns a budget admitting limit attempts.
func NewBudget(limit uint64) *Budget {
	return &Budget{max: limit}
}

// Take records one attempt and reports whether it is within the budget.
// The increment and the comparison use the same atomically returned value,
// so concurrent callers never admit more than max attempts in total.
func (b *Budget) Take() (uint64, bool) {
	n := b.count.Add(1)
	return n, n <= b.max
}

// Used returns the number of attempts recorded so far.
func (b *Budget) Used() uint64 {
	return b.count.Load()
}

// Remaining returns how many attempts are still admitted.
func (b *Budget) Remaining() uint64 {
	used := b.count.Load()
	if used >= b.max {
		return 0
	}
	return b.max - used
}

// Max returns the configured maximum.
func (b *Budget) Max() uint64 {
	return b.max
}

// Exhausted reports whether the next Take would fail.
func (b *Budget) Exhausted() bool {
	return b.count.Load() >= b.max
}

// Reset zeroes the counter. Intended for tests; production code builds a
// fresh Generator instead.
func (b *Budget) Reset() {
	b.count.Store(0)
}
