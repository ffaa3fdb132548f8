package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/agendame/agenda-api/internal/mailer"
	"github.com/agendame/agenda-api/internal/models"
)

type Kind string

const (
	KindBooking      Kind = "booking"
	KindCancellation Kind = "cancellation"
)

// Event is a fire-and-forget side effect: an in-app notification for a new
// booking, or an email for a cancellation.
type Event struct {
	Kind Kind

	// KindBooking
	RecipientID uint
	Content     string

	// KindCancellation
	To      string
	Subject string
	Body    string
}

// Publisher is what the use cases see. Dispatch never blocks and never
// returns an error; side effects must not reach back into the request.
type Publisher interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	store  Store
	mail   mailer.Sender
	log    *zap.Logger
	queue  chan Event
	wg     sync.WaitGroup
	closed sync.Once
}

func NewDispatcher(store Store, mail mailer.Sender, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		store: store,
		mail:  mail,
		log:   log,
		queue: make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev Event) {
	switch ev.Kind {
	case KindBooking:
		n := models.Notification{
			Content:     ev.Content,
			RecipientID: ev.RecipientID,
		}
		if err := d.store.CreateNotification(context.Background(), &n); err != nil {
			d.log.Error("booking notification failed",
				zap.Uint("recipient_id", ev.RecipientID),
				zap.Error(err),
			)
		}
	case KindCancellation:
		if err := d.mail.Send(ev.To, ev.Subject, ev.Body); err != nil {
			d.log.Error("cancellation email failed",
				zap.String("to", ev.To),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop rather than stall a request
		d.log.Warn("notify queue full, dropping event", zap.String("kind", string(ev.Kind)))
	}
}

// Close drains pending events and stops the worker.
func (d *Dispatcher) Close() {
	d.closed.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

var _ Publisher = (*Dispatcher)(nil)
