// File: /jobs/delay_queue.go
package jobs

import (
	"sort"
	"sync"
	"time"
)

// DelayQueue runs one-shot callbacks after a delay. Each callback is keyed;
// scheduling an existing key replaces its timer, so a key never has more than
// one outstanding callback.
type DelayQueue struct {
	mu      sync.Mutex
	entries map[string]*delayEntry
	seq     uint64
	stopped bool
}

type delayEntry struct {
	timer    *time.Timer
	seq      uint64
	deadline time.Time
}

func NewDelayQueue() *DelayQueue {
	return &DelayQueue{entries: make(map[string]*delayEntry)}
}

// Schedule arranges for fn to run after delay. A non-positive delay still runs
// fn asynchronously.
func (q *DelayQueue) Schedule(key string, delay time.Duration, fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return
	}
	if old, ok := q.entries[key]; ok {
		old.timer.Stop()
	}

	q.seq++
	seq := q.seq
	entry := &delayEntry{seq: seq, deadline: time.Now().Add(delay)}
	entry.timer = time.AfterFunc(delay, func() {
		q.mu.Lock()
		current, ok := q.entries[key]
		if !ok || current.seq != seq {
			q.mu.Unlock()
			return
		}
		delete(q.entries, key)
		q.mu.Unlock()

		fn()
	})
	q.entries[key] = entry
}

// Cancel drops the callback for key. It reports whether one was pending.
func (q *DelayQueue) Cancel(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, ok := q.entries[key]
	if !ok {
		return false
	}
	entry.timer.Stop()
	delete(q.entries, key)
	return true
}

// Deadline returns when the callback for key is due.
func (q *DelayQueue) Deadline(key string) (time.Time, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, ok := q.entries[key]
	if !ok {
		return time.Time{}, false
	}
	return entry.deadline, true
}

// Pending returns the keys that still have a callback outstanding, sorted.
func (q *DelayQueue) Pending() []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	keys := make([]string, 0, len(q.entries))
	for k := range q.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (q *DelayQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Stop cancels every outstanding callback. Later Schedule calls are ignored.
func (q *DelayQueue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for k, entry := range q.entries {
		entry.timer.Stop()
		delete(q.entries, k)
	}
	q.stopped = true
}
