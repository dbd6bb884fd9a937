// Package sched provides a single-threaded cooperative timer queue.
//
// The host owns the clock: it calls Advance with the current frame time and
// every timer that became due fires synchronously, in due order, on the
// caller's goroutine. Nothing here starts goroutines or sleeps, so a
// Scheduler behaves identically under a real frame loop and in tests.
package sched

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled timer. The zero Handle is never issued, so it
// can be used as "no timer".
type Handle uint64

// Scheduler is a cooperative timer queue keyed by milliseconds of host time.
// It is not safe for concurrent use.
type Scheduler struct {
	now    float64
	nextID Handle
	seq    uint64
	queue  timerQueue
	live   map[Handle]*timer
}

type timer struct {
	id       Handle
	due      float64
	interval float64 // 0 for one-shot timers
	seq      uint64  // registration order, breaks ties between equal due times
	fn       func()
	index    int
}

// New creates a scheduler whose clock starts at startMs.
func New(startMs float64) *Scheduler {
	return &Scheduler{
		now:  startMs,
		live: make(map[Handle]*timer),
	}
}

// Now returns the scheduler's current time in milliseconds. While a callback
// is running it equals that timer's due time, which keeps chained delays exact
// even when the host clock advances in coarse frames.
func (s *Scheduler) Now() float64 {
	return s.now
}

// ScheduleOnce registers fn to run once, delay after the current time.
func (s *Scheduler) ScheduleOnce(delay time.Duration, fn func()) Handle {
	return s.add(toMs(delay), 0, fn)
}

// ScheduleRepeating registers fn to run every delay, the first call one full
// delay after the current time. A non-positive delay is treated as 1ms so a
// repeating timer can never spin inside one Advance call.
func (s *Scheduler) ScheduleRepeating(delay time.Duration, fn func()) Handle {
	interval := toMs(delay)
	if interval <= 0 {
		interval = 1
	}
	return s.add(interval, interval, fn)
}

// Cancel removes a pending timer. Cancelling an unknown, fired or already
// cancelled handle is a no-op. It reports whether a timer was removed.
func (s *Scheduler) Cancel(h Handle) bool {
	t, ok := s.live[h]
	if !ok {
		return false
	}
	delete(s.live, h)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Pending returns the number of live timers.
func (s *Scheduler) Pending() int {
	return len(s.live)
}

// Advance moves the clock to nowMs and fires every timer due at or before it.
// Repeating timers that fell behind fire once per missed period. Callbacks may
// schedule or cancel timers, including their own. Moving the clock backwards
// is ignored.
func (s *Scheduler) Advance(nowMs float64) {
	if nowMs < s.now {
		return
	}

	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.due > nowMs {
			break
		}
		heap.Pop(&s.queue)
		s.now = next.due

		if next.interval > 0 {
			next.due += next.interval
			next.seq = s.nextSeq()
			heap.Push(&s.queue, next)
		} else {
			delete(s.live, next.id)
		}

		next.fn()
	}

	s.now = nowMs
}

func (s *Scheduler) add(delayMs, intervalMs float64, fn func()) Handle {
	s.nextID++
	t := &timer{
		id:       s.nextID,
		due:      s.now + max(delayMs, 0),
		interval: intervalMs,
		seq:      s.nextSeq(),
		fn:       fn,
		index:    -1,
	}
	s.live[t.id] = t
	heap.Push(&s.queue, t)
	return t.id
}

func (s *Scheduler) nextSeq() uint64 {
	s.seq++
	return s.seq
}

func toMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// timerQueue is a min-heap on (due, seq).
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
