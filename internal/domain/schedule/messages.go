package schedule

const (
	MsgInvalidFormat      = "Please enter time in HH:MM format (e.g., 14:00)"
	MsgOutsideHoursPrefix = "Time must be within working hours"
	MsgAlreadyBooked      = "This time slot is already booked"
)

func BookedMessage(t string) string {
	return "Appointment booked for " + FormatDisplayTime(t) + "!"
}

func AdminBookedMessage(t string) string {
	return "Admin booking added for " + FormatDisplayTime(t)
}

func OutsideHoursMessage(wh WorkingHours) string {
	return MsgOutsideHoursPrefix + " (" + wh.Label() + ")"
}
