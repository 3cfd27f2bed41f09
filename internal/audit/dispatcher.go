package audit

import "log"

// Sink is where dispatched entries end up; the gorm Recorder in
// production, a capture fake in tests.
type Sink interface {
	Record(Entry) error
}

// Dispatcher decouples audit writes from the request path. Best-effort
// at-most-once: a failed or dropped entry is logged and never surfaced
// to the caller, and the primary mutation is never rolled back.
type Dispatcher struct {
	sink  Sink
	queue chan Entry
	done  chan struct{}
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Entry, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for e := range d.queue {
		if err := d.sink.Record(e); err != nil {
			log.Println("audit error:", err)
		}
	}
	close(d.done)
}

func (d *Dispatcher) Dispatch(e Entry) {
	select {
	case d.queue <- e:
	default:
		// queue full → drop the entry, never block the API
		log.Println("audit queue full, dropping entry")
	}
}

// Stop drains the queue and waits for the worker to exit.
func (d *Dispatcher) Stop() {
	close(d.queue)
	<-d.done
}
