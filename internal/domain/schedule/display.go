package schedule

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	longDateLayout = "Monday, January 2, 2006"
)

// FormatDisplayTime converte "HH:MM" para o formato de 12 horas ("1:30 PM").
// Entradas fora do padrão são devolvidas sem alteração.
func FormatDisplayTime(t string) string {
	hour, ok := hourOf(t)
	if !ok {
		return t
	}
	_, minute, _ := strings.Cut(t, ":")

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}

	display := hour
	switch {
	case hour > 12:
		display = hour - 12
	case hour == 0:
		display = 12
	}

	return fmt.Sprintf("%d:%s %s", display, minute, ampm)
}

func FormatDate(d time.Time) string {
	return d.Format(longDateLayout)
}

func FormatDateForInput(d time.Time) string {
	return d.Format(DateLayout)
}
