package booking

import (
	"context"

	"github.com/BruksfildServices01/appointment-booker/internal/audit"
	"github.com/BruksfildServices01/appointment-booker/internal/domain/schedule"
	"github.com/BruksfildServices01/appointment-booker/internal/dto"
	"github.com/BruksfildServices01/appointment-booker/internal/timezone"
)

type SelectDateInput struct {
	SessionID string
	Date      string // yyyy-mm-dd
}

type SelectDate struct {
	d Deps
}

func NewSelectDate(d Deps) *SelectDate {
	return &SelectDate{d: d}
}

func (uc *SelectDate) Execute(ctx context.Context, in SelectDateInput) (*dto.ScheduleViewDTO, error) {
	now := uc.d.now()

	// --------------------------------------------------
	// 1️⃣ Data no fuso configurado, nunca antes de hoje
	// --------------------------------------------------
	date, err := timezone.ParseDate(in.Date, uc.d.Location)
	if err != nil {
		return nil, schedule.ErrInvalidDate
	}
	if date.Before(timezone.Today(now)) {
		return nil, schedule.ErrDateBeforeMin
	}

	// --------------------------------------------------
	// 2️⃣ Troca a data: reservas e mensagem somem
	// --------------------------------------------------
	s, err := uc.d.Repo.Update(ctx, in.SessionID, func(s *schedule.State) error {
		s.SelectDate(date)
		s.UpdatedAt = now
		uc.d.Notices.Cancel(in.SessionID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.d.Audit.Dispatch(audit.Event{
		SessionID: in.SessionID,
		Action:    audit.ActionDateSelected,
		Date:      in.Date,
	})

	v := uc.d.view(s, now)
	v.Changed = true
	return v, nil
}
