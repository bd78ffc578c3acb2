package bookingform

import (
	"context"

	"table-booking/internal/domain/reservation"
)

//go:generate mockgen -source=contract.go -destination=../../../tests/mock/bookingform/contract.go -package=bookingformmock

// Submitter sends a ready draft to the reservation backend and reports whether it was accepted.
type Submitter interface {
	Submit(ctx context.Context, draft *reservation.Draft) (bool, error)
}

// RefreshFunc is told about every non-empty date the user enters, so the caller can
// recompute the slots offered for it.
type RefreshFunc func(date string)
