package schedule

import (
	"time"

	"github.com/google/uuid"
)

// ===============================
// Message
// ===============================

type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

type Message struct {
	ID        string      `json:"id"`
	Kind      MessageKind `json:"kind"`
	Text      string      `json:"text"`
	ExpiresAt time.Time   `json:"expires_at"`
}

func NewMessage(kind MessageKind, text string, now time.Time, ttl time.Duration) *Message {
	return &Message{
		ID:        uuid.New().String(),
		Kind:      kind,
		Text:      text,
		ExpiresAt: now.Add(ttl),
	}
}

func (m *Message) Expired(now time.Time) bool {
	return m == nil || !now.Before(m.ExpiresAt)
}

// ===============================
// Session State
// ===============================

type State struct {
	ID           string    `json:"id"`
	SelectedDate time.Time `json:"selected_date"`
	BookedTimes  BookedSet `json:"booked_times"`
	Message      *Message  `json:"message,omitempty"`
	AdminInput   string    `json:"admin_input"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewState(today time.Time, now time.Time) *State {
	return &State{
		ID:           uuid.New().String(),
		SelectedDate: today,
		BookedTimes:  NewBookedSet(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ===============================
// Domain Actions
// ===============================

// SelectDate troca a data e descarta reservas e mensagem.
func (s *State) SelectDate(date time.Time) {
	s.SelectedDate = date
	s.BookedTimes = NewBookedSet()
	s.Message = nil
}

// Book devolve false quando o horário já estava reservado.
func (s *State) Book(t string) bool {
	if s.BookedTimes == nil {
		s.BookedTimes = NewBookedSet()
	}
	if s.BookedTimes.Has(t) {
		return false
	}
	s.BookedTimes[t] = struct{}{}
	return true
}

func (s *State) SetMessage(m *Message) {
	s.Message = m
}

// ClearMessage limpa apenas a mensagem com o id informado; um timer
// antigo nunca apaga uma mensagem mais nova.
func (s *State) ClearMessage(id string) bool {
	if s.Message == nil || s.Message.ID != id {
		return false
	}
	s.Message = nil
	return true
}

// VisibleMessage esconde mensagens vencidas mesmo que o timer não tenha rodado.
func (s *State) VisibleMessage(now time.Time) *Message {
	if s.Message.Expired(now) {
		return nil
	}
	return s.Message
}

func (s *State) Clone() *State {
	cp := *s
	cp.BookedTimes = s.BookedTimes.Clone()
	if s.Message != nil {
		m := *s.Message
		cp.Message = &m
	}
	return &cp
}
