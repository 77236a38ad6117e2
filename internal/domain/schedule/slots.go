package schedule

import "time"

type TimeSlot struct {
	Time     string `json:"time"`
	Display  string `json:"display"`
	IsBooked bool   `json:"is_booked"`
}

// GenerateSlots monta a grade de 30 minutos em [Start:00, End:00).
// A marcação vem apenas da pertença ao conjunto reservado.
func GenerateSlots(wh WorkingHours, booked BookedSet) []TimeSlot {
	if wh.End <= wh.Start {
		return []TimeSlot{}
	}

	dayStart := time.Date(0, 1, 1, wh.Start, 0, 0, 0, time.UTC)
	dayEnd := time.Date(0, 1, 1, wh.End, 0, 0, 0, time.UTC)

	slots := make([]TimeSlot, 0, int(dayEnd.Sub(dayStart)/SlotStep))
	for cur := dayStart; cur.Before(dayEnd); cur = cur.Add(SlotStep) {
		t := cur.Format("15:04")
		slots = append(slots, TimeSlot{
			Time:     t,
			Display:  FormatDisplayTime(t),
			IsBooked: booked.Has(t),
		})
	}
	return slots
}

// IsGridTime reports whether t is one of the generated slot times.
func IsGridTime(wh WorkingHours, t string) bool {
	for _, s := range GenerateSlots(wh, nil) {
		if s.Time == t {
			return true
		}
	}
	return false
}

// Counts returns (available, booked) over the grid only. Off-grid admin
// bookings are not counted because no slot renders them.
func Counts(slots []TimeSlot) (available int, booked int) {
	for _, s := range slots {
		if s.IsBooked {
			booked++
		} else {
			available++
		}
	}
	return available, booked
}
