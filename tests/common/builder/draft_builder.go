//go:build unit || e2e

package builder

import (
	"time"

	"table-booking/internal/domain/reservation"
)

// DraftBuilder produces a draft that passes validation against the supplied "now".
type DraftBuilder struct {
	Date     string
	Time     string
	Guests   string
	Occasion string
}

func NewDraftBuilder(now time.Time) *DraftBuilder {
	return &DraftBuilder{
		Date:     now.AddDate(0, 0, 1).Format(reservation.DateLayout),
		Time:     "18:00",
		Guests:   "4",
		Occasion: string(reservation.OccasionBirthday),
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) Build() reservation.Draft {
	return reservation.Draft{
		Date:     b.Date,
		Time:     b.Time,
		Guests:   b.Guests,
		Occasion: b.Occasion,
	}
}

// Values lists the draft as field updates in form order.
func (b *DraftBuilder) Values() map[reservation.Field]string {
	return map[reservation.Field]string{
		reservation.FieldDate:     b.Date,
		reservation.FieldTime:     b.Time,
		reservation.FieldGuests:   b.Guests,
		reservation.FieldOccasion: b.Occasion,
	}
}
