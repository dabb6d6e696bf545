package main

import (
	"sync"
	"time"
)

// QuiescenceScheduler runs task once no Touch has happened for the whole window.
type QuiescenceScheduler struct {
	mu      sync.Mutex
	window  time.Duration
	task    func()
	timer   *time.Timer
	pending bool
	stopped bool
}

func NewQuiescenceScheduler(window time.Duration, task func()) *QuiescenceScheduler {
	return &QuiescenceScheduler{
		window: window,
		task:   task,
	}
}

// Touch restarts the quiet window.
func (s *QuiescenceScheduler) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.pending = true
	if s.timer == nil {
		s.timer = time.AfterFunc(s.window, s.fire)
		return
	}
	s.timer.Reset(s.window)
}

func (s *QuiescenceScheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Flush runs a pending task right away on the caller's goroutine.
func (s *QuiescenceScheduler) Flush() {
	s.mu.Lock()
	if !s.pending || s.stopped {
		s.mu.Unlock()
		return
	}
	s.pending = false
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()

	s.task()
}

func (s *QuiescenceScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	s.pending = false
	if s.timer != nil {
		s.timer.Stop()
	}
}

func (s *QuiescenceScheduler) fire() {
	s.mu.Lock()
	if !s.pending || s.stopped {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.mu.Unlock()

	s.task()
}
