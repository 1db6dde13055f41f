package booking

import "github.com/handyhub/marketplace-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func InitialStatus() Status {
	return StatusPending
}

// Parse validates a caller-supplied status literal.
func Parse(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// ===============================
// Transitions
// ===============================

// CanTransition enforces the booking lifecycle: a pending booking can be
// confirmed or cancelled, a confirmed one completed or cancelled, and the
// terminal states absorb. The mobile client only offers these moves in its
// UI; the server rejects everything else.
func CanTransition(from, to Status) error {
	switch from {
	case StatusPending:
		if to == StatusConfirmed || to == StatusCancelled {
			return nil
		}
	case StatusConfirmed:
		if to == StatusCompleted || to == StatusCancelled {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_status_transition")
}
