package audit

import (
	"sync"

	"go.uber.org/zap"
)

const (
	ActionSessionStarted       = "session_started"
	ActionSessionEnded         = "session_ended"
	ActionDateSelected         = "date_selected"
	ActionSlotBooked           = "slot_booked"
	ActionAdminBookingAdded    = "admin_booking_added"
	ActionAdminBookingRejected = "admin_booking_rejected"
)

type Event struct {
	SessionID string
	Action    string
	Date      string
	Time      string
	Metadata  any
}

type Sink interface {
	Log(ev Event) error
}

type Dispatcher struct {
	sink  Sink
	log   *zap.Logger
	queue chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(sink Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			d.log.Warn("audit error", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("audit dispatcher closed, dropping event", zap.String("action", ev.Action))
		return
	}

	select {
	case d.queue <- ev:
	default:
		// fila cheia: descartamos o evento, a API nunca quebra por auditoria
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close drena a fila e espera o worker terminar. Eventos enviados depois
// disso são descartados.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
