package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/appointment-booker/internal/audit"
	"github.com/BruksfildServices01/appointment-booker/internal/domain/schedule"
	"github.com/BruksfildServices01/appointment-booker/internal/dto"
)

type BookSlotInput struct {
	SessionID string
	Time      string // HH:MM, um horário da grade
}

type BookSlot struct {
	d Deps
}

func NewBookSlot(d Deps) *BookSlot {
	return &BookSlot{d: d}
}

// Execute reserva um horário da grade. Horário já reservado não muda nada
// e não gera mensagem; a tela desabilita o botão nesse caso.
// Sessão inexistente tem precedência sobre horário fora da grade.
func (uc *BookSlot) Execute(ctx context.Context, in BookSlotInput) (*dto.ScheduleViewDTO, error) {
	now := uc.d.now()

	s, err := uc.d.Repo.Update(ctx, in.SessionID, func(s *schedule.State) error {
		if !schedule.IsGridTime(uc.d.Hours, in.Time) {
			return schedule.ErrInvalidSlot
		}
		if !s.Book(in.Time) {
			return errNoop
		}
		msg := uc.d.newMessage(schedule.MessageSuccess, schedule.BookedMessage(in.Time), now)
		s.SetMessage(msg)
		s.UpdatedAt = now
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

	uc.d.Audit.Dispatch(audit.Event{
		SessionID: in.SessionID,
		Action:    audit.ActionSlotBooked,
		Date:      schedule.FormatDateForInput(s.SelectedDate),
		Time:      in.Time,
	})

	v := uc.d.view(s, now)
	v.Changed = true
	return v, nil
}
