package runtime

import "sync"

// scheduler is an explicit deferred task queue standing in for the
// host platform's microtask slot. Tasks enqueued while a drain is in
// progress run in the same drain, in FIFO order, before drain returns.
type scheduler struct {
	mu       sync.Mutex
	tasks    []func()
	draining bool
}

func (s *scheduler) enqueue(task func()) {
	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()
}

// drain runs queued tasks until the queue is empty. Reentrant calls
// (a task calling drain) return immediately; the outer drain picks up
// whatever the task enqueued.
func (s *scheduler) drain() {
	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.mu.Unlock()

	for {
		s.mu.Lock()
		if len(s.tasks) == 0 {
			s.draining = false
			s.mu.Unlock()
			return
		}
		task := s.tasks[0]
		s.tasks = s.tasks[1:]
		s.mu.Unlock()
		task()
	}
}
