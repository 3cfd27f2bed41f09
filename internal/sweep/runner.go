package sweep

import (
	"context"
	"log"
	"time"

	"github.com/medsched/hospital-scheduler/internal/dates"
	ucAppointment "github.com/medsched/hospital-scheduler/internal/usecase/appointment"
)

// Runner drives the overdue sweep on a fixed interval for as long as
// the server is up. Timeliness is best-effort; a failed pass is logged
// and the next tick tries again.
type Runner struct {
	sweep    *ucAppointment.OverdueSweep
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewRunner(sweep *ucAppointment.OverdueSweep, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Runner{
		sweep:    sweep,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (r *Runner) Start() {
	go r.loop()
}

func (r *Runner) loop() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.runOnce()
		case <-r.stop:
			return
		}
	}
}

func (r *Runner) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := r.sweep.Execute(ctx, dates.Today())
	if err != nil {
		log.Println("overdue sweep failed:", err)
		return
	}
	if n > 0 {
		log.Printf("overdue sweep: %d appointment(s) marked no-show", n)
	}
}

func (r *Runner) Stop() {
	close(r.stop)
	<-r.done
}
