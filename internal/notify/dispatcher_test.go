package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/agendame/agenda-api/internal/models"
)

type memStore struct {
	mu      sync.Mutex
	created []models.Notification
	fail    bool
}

func (s *memStore) CreateNotification(_ context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("store down")
	}
	s.created = append(s.created, *n)
	return nil
}

type memMailer struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (m *memMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, to+"|"+subject)
	return nil
}

func TestDispatcherDeliversBooking(t *testing.T) {
	store := &memStore{}
	mail := &memMailer{}
	d := NewDispatcher(store, mail, zap.NewNop())

	d.Dispatch(Event{
		Kind:        KindBooking,
		RecipientID: 7,
		Content:     "Novo agendamento de Ana para dia 05 de Março, às 14:00h",
	})
	d.Close()

	require.Len(t, store.created, 1)
	require.Equal(t, uint(7), store.created[0].RecipientID)
	require.False(t, store.created[0].Read)
	require.Empty(t, mail.sent)
}

func TestDispatcherDeliversCancellation(t *testing.T) {
	store := &memStore{}
	mail := &memMailer{}
	d := NewDispatcher(store, mail, zap.NewNop())

	d.Dispatch(Event{
		Kind:    KindCancellation,
		To:      "provider@example.com",
		Subject: "Agendamento cancelado",
		Body:    "O agendamento de dia 05 de Março, às 14:00h foi cancelado pelo cliente.",
	})
	d.Close()

	require.Equal(t, []string{"provider@example.com|Agendamento cancelado"}, mail.sent)
	require.Empty(t, store.created)
}

func TestDispatcherSwallowsFailures(t *testing.T) {
	store := &memStore{fail: true}
	mail := &memMailer{fail: true}
	d := NewDispatcher(store, mail, zap.NewNop())

	// neither failure panics or propagates
	d.Dispatch(Event{Kind: KindBooking, RecipientID: 1, Content: "x"})
	d.Dispatch(Event{Kind: KindCancellation, To: "a@b.com", Subject: "s", Body: "b"})
	d.Close()

	require.Empty(t, store.created)
	require.Empty(t, mail.sent)
}
