package notice

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_Fires(t *testing.T) {
	s := NewScheduler()
	var fired atomic.Int32

	s.Schedule("a", 5*time.Millisecond, func() { fired.Add(1) })

	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)
	assert.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, time.Millisecond)
}

func TestScheduler_RescheduleCancelsPrevious(t *testing.T) {
	s := NewScheduler()
	var first, second atomic.Int32

	s.Schedule("a", 20*time.Millisecond, func() { first.Add(1) })
	s.Schedule("a", 40*time.Millisecond, func() { second.Add(1) })

	assert.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
}

func TestScheduler_SessionsAreIndependent(t *testing.T) {
	s := NewScheduler()
	var a, b atomic.Int32

	s.Schedule("a", 5*time.Millisecond, func() { a.Add(1) })
	s.Schedule("b", 5*time.Millisecond, func() { b.Add(1) })

	assert.Eventually(t, func() bool { return a.Load() == 1 && b.Load() == 1 }, time.Second, time.Millisecond)
}

func TestScheduler_CancelAndStop(t *testing.T) {
	s := NewScheduler()
	var fired atomic.Int32

	s.Schedule("a", 10*time.Millisecond, func() { fired.Add(1) })
	s.Cancel("a")
	s.Schedule("b", 10*time.Millisecond, func() { fired.Add(1) })
	s.Stop()
	s.Schedule("c", time.Millisecond, func() { fired.Add(1) })

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
	assert.Zero(t, s.Pending())
}
