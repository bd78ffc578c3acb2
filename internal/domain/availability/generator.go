package availability

import (
	"fmt"
	"log/slog"
	"time"

	"table-booking/internal/domain/reservation"
)

// Multiplicative LCG constants. The same seed always yields the same slots, so they must not change.
const (
	lcgModulus    int64 = 1<<35 - 31
	lcgMultiplier int64 = 185852

	firstHour = 17
	lastHour  = 23
)

type lcg struct {
	state int64
}

func newLCG(seed int64) *lcg {
	return &lcg{state: seed % lcgModulus}
}

// next returns a value in [0, 1). state stays below 2^35, so the product fits in an int64.
func (g *lcg) next() float64 {
	g.state = (g.state * lcgMultiplier) % lcgModulus
	return float64(g.state) / float64(lcgModulus)
}

// Generator derives the bookable slots of a date. It stands in for a real availability backend.
type Generator struct {
	logger *slog.Logger
}

func NewGenerator(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{logger: logger}
}

// Compute returns the slots for date. A zero date yields an empty set.
//
// Only the day of the month seeds the generator: the 3rd of every month gets the same slots.
func (g *Generator) Compute(date time.Time) Set {
	if date.IsZero() {
		g.logger.Warn("availability requested without a date")
		return Set{}
	}

	rnd := newLCG(int64(date.Day()))
	slots := make(Set, 0, 2*(lastHour-firstHour+1))

	for h := firstHour; h <= lastHour; h++ {
		v := rnd.next()
		if v < 0.5 {
			slots = append(slots, fmt.Sprintf("%d:00", h))
		}
		if v > 0.5 {
			slots = append(slots, fmt.Sprintf("%d:30", h))
		}
	}

	if len(slots) == 0 {
		return Fallback()
	}
	return slots
}

// ComputeString parses a YYYY-MM-DD date and computes its slots. Malformed input yields an empty set.
func (g *Generator) ComputeString(date string) Set {
	t, err := reservation.ParseDate(date, time.UTC)
	if err != nil {
		g.logger.Warn("invalid date provided for availability", "date", date, "error", err)
		return Set{}
	}
	return g.Compute(t)
}
