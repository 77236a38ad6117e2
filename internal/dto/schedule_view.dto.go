package dto

import (
	"time"

	"github.com/BruksfildServices01/appointment-booker/internal/domain/schedule"
)

type MessageDTO struct {
	Kind      schedule.MessageKind `json:"kind"`
	Text      string               `json:"text"`
	ExpiresAt time.Time            `json:"expires_at"`
}

// ScheduleViewDTO é tudo que a tela precisa para se desenhar.
type ScheduleViewDTO struct {
	SessionID         string              `json:"session_id"`
	SelectedDate      string              `json:"selected_date"`
	SelectedDateLabel string              `json:"selected_date_label"`
	MinDate           string              `json:"min_date"`
	WorkingHours      string              `json:"working_hours"`
	Slots             []schedule.TimeSlot `json:"slots"`
	Available         int                 `json:"available"`
	Booked            int                 `json:"booked"`
	BookedTimes       []string            `json:"booked_times"`
	Message           *MessageDTO         `json:"message,omitempty"`
	AdminInput        string              `json:"admin_input"`

	// Changed indica se a ação alterou a data ou o conjunto reservado.
	Changed bool `json:"changed"`
}
