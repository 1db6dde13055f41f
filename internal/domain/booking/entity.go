package booking

import "github.com/handyhub/marketplace-api/internal/models"

// ===============================
// Domain Actions
// ===============================

// Transition moves a booking to the requested status after checking the
// lifecycle rules against its current one.
func Transition(b *models.Booking, to Status) error {
	if err := CanTransition(Status(b.Status), to); err != nil {
		return err
	}

	b.Status = string(to)
	return nil
}
