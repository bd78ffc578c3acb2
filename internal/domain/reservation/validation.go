package reservation

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
)

var (
	MsgDateRequired     = "Please select a date"
	MsgDatePast         = "Please select a future date"
	MsgTimeRequired     = "Please select a time"
	MsgGuestsRequired   = "Please enter number of guests"
	MsgGuestsBelowMin   = fmt.Sprintf("Number of guests must be at least %d", MinGuests)
	MsgGuestsAboveMax   = fmt.Sprintf("Number of guests cannot exceed %d", MaxGuests)
	MsgOccasionRequired = "Please select an occasion"
	MsgSubmitFailed     = "Failed to submit booking. Please try again."
)

// Validate dispatches to the validator of f. now is only consulted for FieldDate.
func (f Field) Validate(value string, now time.Time) (FieldResult, error) {
	switch f {
	case FieldDate:
		return ValidateDate(value, now), nil
	case FieldTime:
		return ValidateTime(value), nil
	case FieldGuests:
		return ValidateGuests(value), nil
	case FieldOccasion:
		return ValidateOccasion(value), nil
	default:
		return FieldResult{}, ErrUnknownField
	}
}

// ValidateDate accepts today or any later calendar day. Comparison ignores the time of day;
// value is read as a YYYY-MM-DD date in now's location.
func ValidateDate(value string, now time.Time) FieldResult {
	if value == "" {
		return invalid(MsgDateRequired)
	}

	selected, err := ParseDate(value, now.Location())
	if err != nil {
		return invalid(MsgDateRequired)
	}

	if selected.Before(StartOfDay(now)) {
		return invalid(MsgDatePast)
	}

	return valid()
}

func ValidateTime(value string) FieldResult {
	if value == "" || value == TimePlaceholder {
		return invalid(MsgTimeRequired)
	}
	return valid()
}

func ValidateGuests(value string) FieldResult {
	n, ok := ParseGuests(value)
	if !ok {
		return invalid(MsgGuestsRequired)
	}
	if n < MinGuests {
		return invalid(MsgGuestsBelowMin)
	}
	if n > MaxGuests {
		return invalid(MsgGuestsAboveMax)
	}
	return valid()
}

// ValidateOccasion only requires a value; membership in Occasions is not checked.
func ValidateOccasion(value string) FieldResult {
	if value == "" {
		return invalid(MsgOccasionRequired)
	}
	return valid()
}

func ValidateDraft(d Draft, now time.Time) Results {
	return Results{
		FieldDate:     ValidateDate(d.Date, now),
		FieldTime:     ValidateTime(d.Time),
		FieldGuests:   ValidateGuests(d.Guests),
		FieldOccasion: ValidateOccasion(d.Occasion),
	}
}

func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, value, loc)
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseGuests reads the leading integer of value: leading spaces are skipped, an optional
// sign is accepted, and parsing stops at the first non-digit. ok is false when no digit is found.
// Runs too long for an int saturate.
func ParseGuests(value string) (n int, ok bool) {
	s := strings.TrimLeftFunc(value, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var acc int64
	digits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		digits++
		if acc < math.MaxInt32 {
			acc = acc*10 + int64(c-'0')
		}
	}
	if digits == 0 {
		return 0, false
	}

	if acc > math.MaxInt32 {
		acc = math.MaxInt32
	}
	if neg {
		acc = -acc
	}
	return int(acc), true
}
