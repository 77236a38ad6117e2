package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/appointment-booker/internal/audit"
	"github.com/BruksfildServices01/appointment-booker/internal/domain/schedule"
	"github.com/BruksfildServices01/appointment-booker/internal/dto"
)

// ======================================================
// START
// ======================================================

type StartSession struct {
	d Deps
}

func NewStartSession(d Deps) *StartSession {
	return &StartSession{d: d}
}

func (uc *StartSession) Execute(ctx context.Context) (*dto.ScheduleViewDTO, error) {
	now := uc.d.now()

	s := schedule.NewState(uc.d.today(), now)
	if err := uc.d.Repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.d.Audit.Dispatch(audit.Event{
		SessionID: s.ID,
		Action:    audit.ActionSessionStarted,
		Date:      schedule.FormatDateForInput(s.SelectedDate),
	})

	return uc.d.view(s, now), nil
}

// ======================================================
// GET
// ======================================================

type GetSchedule struct {
	d Deps
}

func NewGetSchedule(d Deps) *GetSchedule {
	return &GetSchedule{d: d}
}

func (uc *GetSchedule) Execute(ctx context.Context, sessionID string) (*dto.ScheduleViewDTO, error) {
	s, err := uc.d.Repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.d.view(s, uc.d.now()), nil
}

// ======================================================
// END
// ======================================================

type EndSession struct {
	d Deps
}

func NewEndSession(d Deps) *EndSession {
	return &EndSession{d: d}
}

func (uc *EndSession) Execute(ctx context.Context, sessionID string) error {
	if _, err := uc.d.Repo.Get(ctx, sessionID); err != nil {
		return err
	}

	uc.d.Notices.Cancel(sessionID)
	if err := uc.d.Repo.Delete(ctx, sessionID); err != nil {
		return err
	}

	uc.d.Audit.Dispatch(audit.Event{
		SessionID: sessionID,
		Action:    audit.ActionSessionEnded,
	})
	return nil
}

// ======================================================
// SWEEP
// ======================================================

type SweepSessions struct {
	d   Deps
	ttl time.Duration
}

func NewSweepSessions(d Deps, ttl time.Duration) *SweepSessions {
	return &SweepSessions{d: d, ttl: ttl}
}

// Execute remove sessões paradas há mais de ttl e cancela seus timers.
func (uc *SweepSessions) Execute(ctx context.Context) (int, error) {
	removed, err := uc.d.Repo.Sweep(ctx, uc.d.now().Add(-uc.ttl))
	if err != nil {
		return 0, err
	}

	for _, id := range removed {
		uc.d.Notices.Cancel(id)
		uc.d.Audit.Dispatch(audit.Event{
			SessionID: id,
			Action:    audit.ActionSessionEnded,
			Metadata:  map[string]any{"reason": "expired"},
		})
	}
	return len(removed), nil
}
