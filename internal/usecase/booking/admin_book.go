package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/appointment-booker/internal/audit"
	"github.com/BruksfildServices01/appointment-booker/internal/domain/schedule"
	"github.com/BruksfildServices01/appointment-booker/internal/dto"
)

type AdminBookInput struct {
	SessionID string
	Time      string // texto livre digitado pelo admin
}

const (
	RejectInvalidFormat = "invalid_time_format"
	RejectOutsideHours  = "outside_working_hours"
	RejectAlreadyBooked = "already_booked"
)

type AdminBook struct {
	d Deps
}

func NewAdminBook(d Deps) *AdminBook {
	return &AdminBook{d: d}
}

// Execute valida o texto na ordem: vazio, formato, expediente, duplicado.
// Falhas de validação viram mensagem de erro na tela, não erro Go.
//
// O horário entra como foi digitado, sem encaixe na grade: "14:15" é aceito
// mas nenhum slot aparece reservado por ele.
func (uc *AdminBook) Execute(ctx context.Context, in AdminBookInput) (*dto.ScheduleViewDTO, error) {
	now := uc.d.now()

	var reason string

	s, err := uc.d.Repo.Update(ctx, in.SessionID, func(s *schedule.State) error {
		reason = ""
		if in.Time == "" {
			return errNoop
		}

		s.AdminInput = in.Time
		s.UpdatedAt = now

		var msg *schedule.Message
		switch {
		case !schedule.IsValidTimeFormat(in.Time):
			reason = RejectInvalidFormat
			msg = uc.d.newMessage(schedule.MessageError, schedule.MsgInvalidFormat, now)

		case !uc.d.Hours.IsWithinWorkingHours(in.Time):
			reason = RejectOutsideHours
			msg = uc.d.newMessage(schedule.MessageError, schedule.OutsideHoursMessage(uc.d.Hours), now)

		case s.BookedTimes.Has(in.Time):
			reason = RejectAlreadyBooked
			msg = uc.d.newMessage(schedule.MessageError, schedule.MsgAlreadyBooked, now)

		default:
			s.Book(in.Time)
			s.AdminInput = ""
			msg = uc.d.newMessage(schedule.MessageSuccess, schedule.AdminBookedMessage(in.Time), now)
		}

		s.SetMessage(msg)
		uc.d.scheduleClear(in.SessionID, msg, now)
		return nil
	})

	if errors.Is(err, errNoop) {
		cur, err := uc.d.Repo.Get(ctx, in.SessionID)
		if err != nil {
			return nil, err
		}
		return uc.d.view(cur, now), nil
	}
	if err != nil {
		return nil, err
	}

	ev := audit.Event{
		SessionID: in.SessionID,
		Action:    audit.ActionAdminBookingAdded,
		Date:      schedule.FormatDateForInput(s.SelectedDate),
		Time:      in.Time,
	}
	if reason != "" {
		ev.Action = audit.ActionAdminBookingRejected
		ev.Metadata = map[string]any{"reason": reason}
	}
	uc.d.Audit.Dispatch(ev)

	v := uc.d.view(s, now)
	v.Changed = reason == ""
	return v, nil
}
