package audit

import (
	"go.uber.org/zap"
)

// Logger grava eventos de auditoria como linhas estruturadas.
type Logger struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Logger {
	return &Logger{log: log.Named("audit")}
}

func (l *Logger) Log(ev Event) error {
	fields := []zap.Field{
		zap.String("session_id", ev.SessionID),
		zap.String("action", ev.Action),
	}
	if ev.Time != "" {
		fields = append(fields, zap.String("time", ev.Time))
	}
	if ev.Date != "" {
		fields = append(fields, zap.String("date", ev.Date))
	}
	if ev.Metadata != nil {
		fields = append(fields, zap.Any("metadata", ev.Metadata))
	}

	l.log.Info("audit", fields...)
	return nil
}
