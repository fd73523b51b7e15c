package prowl

import (
	"sync"
	"time"
)

// Quota tracks the rate-limit metadata most recently reported by the API:
// how many notifications the key may still post, and when the counter
// resets. It is updated as a side effect of every parsed response that
// carries the relevant attributes and is owned by a single [Client], so
// independently configured clients never share quota bookkeeping.
//
// Values are overwritten whole on each response, never merged or
// accumulated. It is safe for concurrent use.
type Quota struct {
	mu           sync.RWMutex
	remaining    int
	resetDate    int64
	hasRemaining bool
	hasResetDate bool
}

// Remaining returns the number of posts the API will still accept before
// the reset date. The second return value is false until a response
// carrying the attribute has been observed.
func (q *Quota) Remaining() (int, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.remaining, q.hasRemaining
}

// ResetDate returns the time at which the remaining counter resets. The
// second return value is false until a response carrying the attribute
// has been observed.
func (q *Quota) ResetDate() (time.Time, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return time.Unix(q.resetDate, 0), q.hasResetDate
}

func (q *Quota) update(attrs map[string]int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if remaining, ok := attrs["remaining"]; ok {
		q.remaining = remaining
		q.hasRemaining = true
	}
	if resetDate, ok := attrs["resetdate"]; ok {
		q.resetDate = int64(resetDate)
		q.hasResetDate = true
	}
}
