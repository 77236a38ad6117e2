package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_BookIsIdempotent(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	s := NewState(now, now)

	assert.True(t, s.Book("10:00"))
	assert.False(t, s.Book("10:00"))
	assert.Equal(t, 1, s.BookedTimes.Len())
}

func TestState_SelectDateResets(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	s := NewState(now, now)
	s.Book("10:00")
	s.SetMessage(NewMessage(MessageSuccess, BookedMessage("10:00"), now, 4*time.Second))

	next := now.AddDate(0, 0, 1)
	s.SelectDate(next)

	assert.Equal(t, next, s.SelectedDate)
	assert.Zero(t, s.BookedTimes.Len())
	assert.Nil(t, s.Message)
}

func TestState_ClearMessageOnlyMatchingID(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	s := NewState(now, now)

	first := NewMessage(MessageSuccess, "first", now, 4*time.Second)
	s.SetMessage(first)
	second := NewMessage(MessageError, "second", now, 3*time.Second)
	s.SetMessage(second)

	assert.False(t, s.ClearMessage(first.ID))
	require.NotNil(t, s.Message)
	assert.Equal(t, "second", s.Message.Text)

	assert.True(t, s.ClearMessage(second.ID))
	assert.Nil(t, s.Message)
}

func TestState_VisibleMessageHonoursExpiry(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	s := NewState(now, now)
	s.SetMessage(NewMessage(MessageError, MsgAlreadyBooked, now, 3*time.Second))

	assert.NotNil(t, s.VisibleMessage(now.Add(2*time.Second)))
	assert.Nil(t, s.VisibleMessage(now.Add(3*time.Second)))
}

func TestState_JSONKeepsBookedSet(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	s := NewState(now, now)
	s.Book("16:30")
	s.Book("09:00")

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"booked_times":["09:00","16:30"]`)

	var back State
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.BookedTimes.Has("09:00"))
	assert.True(t, back.BookedTimes.Has("16:30"))
}

func TestState_CloneIsIndependent(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	s := NewState(now, now)
	s.Book("09:00")

	cp := s.Clone()
	cp.Book("09:30")

	assert.False(t, s.BookedTimes.Has("09:30"))
	assert.True(t, cp.BookedTimes.Has("09:00"))
}
