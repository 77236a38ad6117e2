package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Sweeper interface {
	Execute(ctx context.Context) (int, error)
}

// Scheduler roda a limpeza de sessões paradas no cron configurado.
type Scheduler struct {
	cron    *cron.Cron
	log     *zap.Logger
	sweeper Sweeper
	expr    string
}

func NewScheduler(expr string, sweeper Sweeper, log *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		log:     log,
		sweeper: sweeper,
		expr:    expr,
	}

	if _, err := s.cron.AddFunc(expr, s.run); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.sweeper.Execute(ctx)
	if err != nil {
		s.log.Warn("session sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.log.Debug("expired sessions removed", zap.Int("count", n))
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("session sweeper started", zap.String("schedule", s.expr))
}

// Stop espera o job em execução terminar.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("session sweeper stopped")
}
