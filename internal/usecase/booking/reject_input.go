package booking

import (
	"context"

	"github.com/BruksfildServices01/appointment-booker/internal/domain/schedule"
	"github.com/BruksfildServices01/appointment-booker/internal/dto"
)

type RejectInputInput struct {
	SessionID string
	Text      string
}

// RejectInput mostra um erro de entrada na tela sem mexer na data nem nas
// reservas. A mensagem some sozinha como as do admin.
type RejectInput struct {
	d Deps
}

func NewRejectInput(d Deps) *RejectInput {
	return &RejectInput{d: d}
}

func (uc *RejectInput) Execute(ctx context.Context, in RejectInputInput) (*dto.ScheduleViewDTO, error) {
	now := uc.d.now()

	s, err := uc.d.Repo.Update(ctx, in.SessionID, func(s *schedule.State) error {
		msg := uc.d.newMessage(schedule.MessageError, in.Text, now)
		s.SetMessage(msg)
		s.UpdatedAt = now
		uc.d.scheduleClear(in.SessionID, msg, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.d.view(s, now), nil
}
