package audit

import (
	"sync"

	"github.com/BruksfildServices01/booking-api/internal/logger"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Sink interface {
	Log(ev Event) error
}

// Dispatcher writes events from a single background worker so CRUD
// requests never wait on the audit table.
type Dispatcher struct {
	sink  Sink
	log   logger.Logger
	queue chan Event

	once sync.Once
	done chan struct{}
}

func NewDispatcher(sink Sink, log logger.Logger) *Dispatcher {
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
			d.log.Warn("audit write failed",
				logger.String("action", ev.Action),
				logger.Error(err))
		}
	}
}

// Dispatch never blocks; when the queue is full the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event",
			logger.String("action", ev.Action))
	}
}

// Close drains pending events and stops the worker.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.queue) })
	<-d.done
}
