package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (s *countingSweeper) Execute(ctx context.Context) (int, error) {
	s.calls.Add(1)
	return 1, s.err
}

func TestScheduler_RunsSweep(t *testing.T) {
	sw := &countingSweeper{}
	s, err := NewScheduler("@every 1s", sw, zap.NewNop())
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return sw.calls.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)
}

func TestScheduler_ErrorsDoNotStopTheJob(t *testing.T) {
	sw := &countingSweeper{err: errors.New("redis down")}
	s, err := NewScheduler("@every 1s", sw, zap.NewNop())
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return sw.calls.Load() >= 2 }, 4*time.Second, 10*time.Millisecond)
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	_, err := NewScheduler("every now and then", &countingSweeper{}, zap.NewNop())
	assert.Error(t, err)
}

func TestScheduler_LogsSweepFailures(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sw := &countingSweeper{err: errors.New("redis down")}
	s, err := NewScheduler("@every 1h", sw, zap.New(core))
	require.NoError(t, err)

	s.Start()
	s.run()
	s.Stop()

	assert.Equal(t, int32(1), sw.calls.Load())
	assert.Equal(t, 1, logs.FilterMessage("session sweeper started").Len())
	assert.Equal(t, 1, logs.FilterMessage("session sweep failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("session sweeper stopped").Len())
}
