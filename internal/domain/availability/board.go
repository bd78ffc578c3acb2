package availability

import (
	"sync"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/pkg/clock"
)

// Board keeps the slots for the currently selected date. It is the reducer a presentation
// layer dispatches date changes to.
type Board struct {
	mu    sync.RWMutex
	gen   *Generator
	clock clock.Clock
	date  string
	times Set
}

// NewBoard starts with today's slots.
func NewBoard(gen *Generator, clk clock.Clock) *Board {
	b := &Board{gen: gen, clock: clk}
	b.Dispatch("")
	return b
}

// Dispatch recomputes the slots for date. An empty date means today.
func (b *Board) Dispatch(date string) Set {
	if date == "" {
		date = b.clock.Now().Format(reservation.DateLayout)
	}
	times := b.gen.ComputeString(date)

	b.mu.Lock()
	b.date = date
	b.times = times
	b.mu.Unlock()

	return times.OrFallback()
}

// Times never returns an empty set.
func (b *Board) Times() Set {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.times.OrFallback()
}

func (b *Board) Date() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.date
}
