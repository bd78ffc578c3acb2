package availability

import "slices"

// Set is an ordered list of HH:MM slots for one date.
type Set []string

var fallback = Set{"17:00", "18:00", "19:00", "20:00", "21:00", "22:00"}

// Fallback returns the six hourly slots used when nothing else is available.
func Fallback() Set {
	return slices.Clone(fallback)
}

func (s Set) Contains(slot string) bool {
	return slices.Contains(s, slot)
}

func (s Set) OrFallback() Set {
	if len(s) == 0 {
		return Fallback()
	}
	return slices.Clone(s)
}
