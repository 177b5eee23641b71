package scheduling

import (
	"errors"
	"time"
)

// Status is an appointment's lifecycle state.
type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusCheckedIn   Status = "checked_in"
	StatusCompleted   Status = "completed"
	StatusMissed      Status = "missed"
	StatusRescheduled Status = "rescheduled"
)

var (
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrReasonRequired    = errors.New("a reason is required for this transition")
)

// ValidStatus reports whether s is one of the five lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusCheckedIn, StatusCompleted, StatusMissed, StatusRescheduled:
		return true
	}
	return false
}

// Change is the set of field mutations a transition produces. Nil pointers
// mean "leave the column alone"; the storage layer applies exactly what is
// set here and nothing more.
type Change struct {
	Status           Status
	AdmissionTime    *time.Time
	DischargeTime    *time.Time
	RescheduleReason *string
}

// Plan validates the transition current -> next and returns the mutations
// it carries. The admission clock starts only on scheduled -> checked_in and
// the discharge time is stamped only on checked_in -> completed; no other
// transition touches either timestamp.
//
// Moving a scheduled appointment to missed or rescheduled requires a reason
// (the no-show default text is supplied by the caller, not invented here).
// Rebooking a missed or rescheduled appointment back to scheduled is allowed;
// the caller decides whether that mutates the date or creates a new record.
func Plan(current, next Status, reason string, now time.Time) (Change, error) {
	if !ValidStatus(current) || !ValidStatus(next) {
		return Change{}, ErrInvalidStatus
	}
	if current == next {
		return Change{Status: next}, nil
	}

	switch {
	case current == StatusScheduled && next == StatusCheckedIn:
		t := now
		return Change{Status: next, AdmissionTime: &t}, nil

	case current == StatusCheckedIn && next == StatusCompleted:
		t := now
		return Change{Status: next, DischargeTime: &t}, nil

	case current == StatusScheduled && (next == StatusMissed || next == StatusRescheduled),
		current == StatusMissed && next == StatusRescheduled:
		if reason == "" {
			return Change{}, ErrReasonRequired
		}
		r := reason
		return Change{Status: next, RescheduleReason: &r}, nil

	case (current == StatusMissed || current == StatusRescheduled) && next == StatusScheduled:
		// rebook
		return Change{Status: next}, nil
	}

	return Change{}, ErrInvalidTransition
}
