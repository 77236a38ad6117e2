package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ===============================
// Working hours
// ===============================

const SlotStep = 30 * time.Minute

type WorkingHours struct {
	Start int // hora inicial, inclusiva
	End   int // hora final, exclusiva
}

// DefaultWorkingHours é a janela fixa de atendimento: 09:00 até 17:00.
var DefaultWorkingHours = WorkingHours{Start: 9, End: 17}

var timeFormat = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidTimeFormat aceita "H:MM" ou "HH:MM" no relógio de 24 horas.
func IsValidTimeFormat(t string) bool {
	return timeFormat.MatchString(t)
}

// IsWithinWorkingHours só olha a hora; os minutos não são validados aqui.
func (wh WorkingHours) IsWithinWorkingHours(t string) bool {
	hour, ok := hourOf(t)
	if !ok {
		return false
	}
	return hour >= wh.Start && hour < wh.End
}

// Label renders the window as "9:00 AM - 5:00 PM".
func (wh WorkingHours) Label() string {
	return FormatDisplayTime(hm(wh.Start, 0)) + " - " + FormatDisplayTime(hm(wh.End, 0))
}

func hourOf(t string) (int, bool) {
	h, _, found := strings.Cut(t, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	return hour, true
}

func hm(hour, minute int) string {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC).Format("15:04")
}
