// Package clock schedules delayed callbacks.
//
// Manual is driven by explicit Advance calls. The live UI advances it from its
// tick messages so every callback runs on the UI goroutine; tests advance it
// by hand.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Timer runs f once after d.
type Timer interface {
	AfterFunc(d time.Duration, f func())
}

// Real schedules on the runtime timer; callbacks run on their own goroutine.
type Real struct{}

func (Real) AfterFunc(d time.Duration, f func()) { time.AfterFunc(d, f) }

type pending struct {
	at  time.Duration
	seq int
	f   func()
}

// Manual is a Timer whose time only moves through Advance.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	queue []pending
}

func NewManual() *Manual { return &Manual{} }

func (m *Manual) AfterFunc(d time.Duration, f func()) {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	m.seq++
	m.queue = append(m.queue, pending{at: m.now + d, seq: m.seq, f: f})
	m.mu.Unlock()
}

func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending reports how many callbacks have not fired yet.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Advance moves time forward by d and fires every callback that came due, in
// due order. Callbacks scheduled while advancing fire in the same call if they
// fall inside the window.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	fired := 0
	for {
		m.mu.Lock()
		next := -1
		for i, p := range m.queue {
			if p.at > target {
				continue
			}
			if next == -1 || p.at < m.queue[next].at || (p.at == m.queue[next].at && p.seq < m.queue[next].seq) {
				next = i
			}
		}
		if next == -1 {
			m.now = target
			m.mu.Unlock()
			return fired
		}
		p := m.queue[next]
		m.queue = append(m.queue[:next], m.queue[next+1:]...)
		m.now = p.at
		m.mu.Unlock()

		p.f()
		fired++
	}
}

// Drain fires every queued callback, including ones they schedule, and
// returns the elapsed time.
func (m *Manual) Drain() time.Duration {
	start := m.Now()
	for m.Pending() > 0 {
		m.mu.Lock()
		sort.Slice(m.queue, func(i, j int) bool { return m.queue[i].at < m.queue[j].at })
		step := m.queue[0].at - m.now
		m.mu.Unlock()
		m.Advance(step)
	}
	return m.Now() - start
}
