package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-booker/internal/audit"
	"github.com/BruksfildServices01/appointment-booker/internal/config"
	"github.com/BruksfildServices01/appointment-booker/internal/domain/schedule"
	infraRepo "github.com/BruksfildServices01/appointment-booker/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-booker/internal/jobs"
	"github.com/BruksfildServices01/appointment-booker/internal/logger"
	"github.com/BruksfildServices01/appointment-booker/internal/notice"
	"github.com/BruksfildServices01/appointment-booker/internal/routes"
	"github.com/BruksfildServices01/appointment-booker/internal/timezone"
	ucBooking "github.com/BruksfildServices01/appointment-booker/internal/usecase/booking"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.IsProduction())
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	var repo schedule.Repository = infraRepo.NewSessionMemoryRepository()
	if cfg.UseRedis() {
		client, err := infraRepo.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("redis unavailable", zap.Error(err))
		}
		defer client.Close()
		repo = infraRepo.NewSessionRedisRepository(client, cfg.SessionTTL)
		log.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
	}

	auditDispatcher := audit.NewDispatcher(audit.New(log), log)
	notices := notice.NewScheduler()

	deps := ucBooking.Deps{
		Repo:       repo,
		Audit:      auditDispatcher,
		Notices:    notices,
		Log:        log,
		Location:   timezone.Location(cfg.Timezone),
		Hours:      schedule.DefaultWorkingHours,
		SuccessTTL: cfg.SuccessMessageTTL,
		ErrorTTL:   cfg.ErrorMessageTTL,
	}

	sweeper, err := jobs.NewScheduler(cfg.SweepSchedule, ucBooking.NewSweepSessions(deps, cfg.SessionTTL), log)
	if err != nil {
		log.Fatal("invalid sweep schedule", zap.String("schedule", cfg.SweepSchedule), zap.Error(err))
	}
	sweeper.Start()

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, deps, cfg, log)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("server shutdown", zap.Error(err))
	}

	sweeper.Stop()
	notices.Stop()
	auditDispatcher.Close()
}
