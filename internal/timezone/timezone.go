package timezone

import (
	"time"

	"github.com/BruksfildServices01/appointment-booker/internal/domain/schedule"
)

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Today devolve a meia-noite de now no seu próprio fuso.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// ParseDate interpreta "yyyy-mm-dd" em loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(schedule.DateLayout, s, loc)
}
