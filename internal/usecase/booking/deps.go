package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-booker/internal/audit"
	"github.com/BruksfildServices01/appointment-booker/internal/domain/schedule"
	"github.com/BruksfildServices01/appointment-booker/internal/dto"
	"github.com/BruksfildServices01/appointment-booker/internal/httperr"
	"github.com/BruksfildServices01/appointment-booker/internal/notice"
	"github.com/BruksfildServices01/appointment-booker/internal/timezone"
)

// ======================================================
// DEPENDÊNCIAS COMPARTILHADAS
// ======================================================

type Deps struct {
	Repo    schedule.Repository
	Audit   *audit.Dispatcher
	Notices *notice.Scheduler
	Log     *zap.Logger

	Location   *time.Location
	Hours      schedule.WorkingHours
	SuccessTTL time.Duration
	ErrorTTL   time.Duration

	Now func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now().In(d.Location)
	}
	return time.Now().In(d.Location)
}

func (d Deps) today() time.Time {
	return timezone.Today(d.now())
}

// errNoop aborta um Update sem gravar nada.
var errNoop = errors.New("noop")

// ======================================================
// MENSAGENS
// ======================================================

func (d Deps) newMessage(kind schedule.MessageKind, text string, now time.Time) *schedule.Message {
	ttl := d.SuccessTTL
	if kind == schedule.MessageError {
		ttl = d.ErrorTTL
	}
	return schedule.NewMessage(kind, text, now, ttl)
}

// scheduleClear troca o timer pendente da sessão por um que limpa msg.
// Chamar dentro do Update, para que a ordem dos timers siga a ordem das
// escritas; o timer roda em outra goroutine e só pega o lock depois.
func (d Deps) scheduleClear(sessionID string, msg *schedule.Message, now time.Time) {
	d.Notices.Schedule(sessionID, msg.ExpiresAt.Sub(now), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		_, err := d.Repo.Update(ctx, sessionID, func(s *schedule.State) error {
			if !s.ClearMessage(msg.ID) {
				return errNoop
			}
			return nil
		})
		if err != nil && !errors.Is(err, errNoop) && !httperr.IsBusiness(err, "session_not_found") {
			d.Log.Warn("failed to clear message", zap.String("session_id", sessionID), zap.Error(err))
		}
	})
}

// ======================================================
// VIEW
// ======================================================

func (d Deps) view(s *schedule.State, now time.Time) *dto.ScheduleViewDTO {
	slots := schedule.GenerateSlots(d.Hours, s.BookedTimes)
	available, booked := schedule.Counts(slots)

	v := &dto.ScheduleViewDTO{
		SessionID:         s.ID,
		SelectedDate:      schedule.FormatDateForInput(s.SelectedDate),
		SelectedDateLabel: schedule.FormatDate(s.SelectedDate),
		MinDate:           schedule.FormatDateForInput(timezone.Today(now)),
		WorkingHours:      d.Hours.Label(),
		Slots:             slots,
		Available:         available,
		Booked:            booked,
		BookedTimes:       s.BookedTimes.Sorted(),
		AdminInput:        s.AdminInput,
	}

	if m := s.VisibleMessage(now); m != nil {
		v.Message = &dto.MessageDTO{
			Kind:      m.Kind,
			Text:      m.Text,
			ExpiresAt: m.ExpiresAt,
		}
	}
	return v
}
