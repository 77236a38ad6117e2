package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots_Grid(t *testing.T) {
	slots := GenerateSlots(DefaultWorkingHours, nil)

	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "16:30", slots[len(slots)-1].Time)

	for i := 1; i < len(slots); i++ {
		prev, err := time.Parse("15:04", slots[i-1].Time)
		require.NoError(t, err)
		cur, err := time.Parse("15:04", slots[i].Time)
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cur.Sub(prev), "step between %s and %s", slots[i-1].Time, slots[i].Time)
	}
}

func TestGenerateSlots_MarksBooked(t *testing.T) {
	slots := GenerateSlots(DefaultWorkingHours, NewBookedSet("10:30"))

	for _, s := range slots {
		assert.Equal(t, s.Time == "10:30", s.IsBooked, s.Time)
	}

	available, booked := Counts(slots)
	assert.Equal(t, 15, available)
	assert.Equal(t, 1, booked)
}

func TestGenerateSlots_OffGridBookingNotRendered(t *testing.T) {
	slots := GenerateSlots(DefaultWorkingHours, NewBookedSet("14:15"))

	for _, s := range slots {
		assert.False(t, s.IsBooked, s.Time)
	}
	available, booked := Counts(slots)
	assert.Equal(t, 16, available)
	assert.Equal(t, 0, booked)
}

func TestGenerateSlots_EmptyWindow(t *testing.T) {
	assert.Empty(t, GenerateSlots(WorkingHours{Start: 17, End: 9}, nil))
}

func TestIsGridTime(t *testing.T) {
	assert.True(t, IsGridTime(DefaultWorkingHours, "09:00"))
	assert.True(t, IsGridTime(DefaultWorkingHours, "16:30"))
	assert.False(t, IsGridTime(DefaultWorkingHours, "17:00"))
	assert.False(t, IsGridTime(DefaultWorkingHours, "14:15"))
	assert.False(t, IsGridTime(DefaultWorkingHours, "9:00"))
}

func TestFormatDisplayTime(t *testing.T) {
	cases := map[string]string{
		"00:00": "12:00 AM",
		"09:30": "9:30 AM",
		"12:00": "12:00 PM",
		"13:30": "1:30 PM",
		"16:30": "4:30 PM",
		"nope":  "nope",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatDisplayTime(in), in)
	}
}

func TestIsValidTimeFormat(t *testing.T) {
	for _, ok := range []string{"14:00", "9:05", "00:00", "23:59"} {
		assert.True(t, IsValidTimeFormat(ok), ok)
	}
	for _, bad := range []string{"", "25:00", "24:00", "14:60", "1400", "14:0", "ab:cd", " 14:00"} {
		assert.False(t, IsValidTimeFormat(bad), bad)
	}
}

func TestWorkingHours(t *testing.T) {
	wh := DefaultWorkingHours

	assert.True(t, wh.IsWithinWorkingHours("09:00"))
	assert.True(t, wh.IsWithinWorkingHours("16:59"))
	assert.False(t, wh.IsWithinWorkingHours("08:00"))
	assert.False(t, wh.IsWithinWorkingHours("17:00"))
	assert.Equal(t, "9:00 AM - 5:00 PM", wh.Label())
}
