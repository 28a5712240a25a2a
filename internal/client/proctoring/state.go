// Package proctoring holds the observable proctoring state consumed by the
// display-only overlay. Detection of warnings and violations happens
// elsewhere; this package only records and projects them.
package proctoring

import (
	"sync"
	"time"
)

// Violation is one recorded proctoring incident.
type Violation struct {
	Kind   string
	Detail string
	At     time.Time
}

// State is the proctoring provider the overlay reads from. Start and Stop
// belong to the provider; the overlay never calls them.
type State interface {
	Warnings() int
	Violations() []Violation
	Start()
	Stop()
	// Subscribe registers fn to run after every state change and returns a
	// function that removes it.
	Subscribe(fn func()) (unsubscribe func())
}

// Store is an in-memory State. Listeners run synchronously on the goroutine
// that made the change, after the lock is released.
type Store struct {
	mu         sync.Mutex
	warnings   int
	violations []Violation
	running    bool
	listeners  map[uint64]func()
	nextID     uint64
	now        func() time.Time
}

func NewStore() *Store {
	return &Store{listeners: map[uint64]func(){}, now: time.Now}
}

func (s *Store) Warnings() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warnings
}

// Violations returns a copy of the recorded violations, oldest first.
func (s *Store) Violations() []Violation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Violation(nil), s.violations...)
}

func (s *Store) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Store) Start() { s.setRunning(true) }

func (s *Store) Stop() { s.setRunning(false) }

func (s *Store) setRunning(v bool) {
	s.mu.Lock()
	changed := s.running != v
	s.running = v
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

func (s *Store) AddWarning() {
	s.mu.Lock()
	s.warnings++
	s.mu.Unlock()
	s.notify()
}

func (s *Store) RecordViolation(kind, detail string) {
	s.mu.Lock()
	s.violations = append(s.violations, Violation{Kind: kind, Detail: detail, At: s.now().UTC()})
	s.mu.Unlock()
	s.notify()
}

// Reset clears all counters and records.
func (s *Store) Reset() {
	s.mu.Lock()
	s.warnings = 0
	s.violations = nil
	s.mu.Unlock()
	s.notify()
}

func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
