package schedule

import (
	"encoding/json"
	"sort"
)

// BookedSet guarda os horários reservados ("HH:MM") da data selecionada.
type BookedSet map[string]struct{}

func NewBookedSet(times ...string) BookedSet {
	s := make(BookedSet, len(times))
	for _, t := range times {
		s[t] = struct{}{}
	}
	return s
}

func (s BookedSet) Has(t string) bool {
	_, ok := s[t]
	return ok
}

func (s BookedSet) Len() int {
	return len(s)
}

func (s BookedSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (s BookedSet) Clone() BookedSet {
	return NewBookedSet(s.Sorted()...)
}

func (s BookedSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *BookedSet) UnmarshalJSON(b []byte) error {
	var times []string
	if err := json.Unmarshal(b, &times); err != nil {
		return err
	}
	*s = NewBookedSet(times...)
	return nil
}
