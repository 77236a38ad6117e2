// Package notice agenda a limpeza automática das mensagens de cada sessão.
package notice

import (
	"sync"
	"time"
)

// Scheduler guarda no máximo um timer por sessão. Agendar de novo cancela
// o timer anterior, então um clear antigo não apaga uma mensagem nova.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[string]*time.Timer)}
}

func (s *Scheduler) Schedule(sessionID string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if t, ok := s.timers[sessionID]; ok {
		t.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if s.timers[sessionID] == t {
			delete(s.timers, sessionID)
		}
		s.mu.Unlock()
		fn()
	})
	s.timers[sessionID] = t
}

func (s *Scheduler) Cancel(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[sessionID]; ok {
		t.Stop()
		delete(s.timers, sessionID)
	}
}

func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancela tudo e ignora agendamentos futuros.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.closed = true
}
