package appointment

import (
	"time"

	"github.com/agendame/agenda-api/internal/httperr"
	"github.com/agendame/agenda-api/internal/models"
)

// CancelMinLead is the minimum interval between now and the scheduled hour
// for a cancellation to be accepted.
const CancelMinLead = 2 * time.Hour

// ===============================
// Slot rules
// ===============================

// NormalizeHour truncates t to the start of its hour. Slots are hour
// granular; every stored or compared date goes through this first.
func NormalizeHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// CanBook validates the temporal half of creation: slot must be strictly in
// the future once normalized.
func CanBook(slot time.Time, now time.Time) error {
	if !slot.After(now) {
		return httperr.ErrBusiness("past_date")
	}
	return nil
}

// ===============================
// Cancellation
// ===============================

// CancelDeadline is the last instant at which ap may still be canceled.
func CancelDeadline(ap *models.Appointment) time.Time {
	return ap.Date.Add(-CancelMinLead)
}

// CanCancel checks the lead-time rule. An already-canceled appointment is
// treated as gone, same as a missing one.
func CanCancel(ap *models.Appointment, now time.Time) error {
	if ap.CanceledAt != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}
	if !CancelDeadline(ap).After(now) {
		return httperr.ErrBusiness("too_late_to_cancel")
	}
	return nil
}

// Cancel applies the Scheduled -> Canceled transition.
func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(ap, now); err != nil {
		return err
	}
	ap.CanceledAt = &now
	return nil
}
