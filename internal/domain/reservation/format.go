package reservation

import (
	"fmt"
	"strconv"
	"strings"
)

const longDateLayout = "Monday, January 2, 2006"

// FormatDate renders a YYYY-MM-DD date in long form. Unparseable input is returned as is.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}
	t, err := ParseDate(value, nil)
	if err != nil {
		return value
	}
	return t.Format(longDateLayout)
}

// FormatTime renders an HH:MM slot in 12-hour form, e.g. "18:30" -> "6:30 PM".
func FormatTime(value string) string {
	if value == "" {
		return ""
	}
	hh, mm, found := strings.Cut(value, ":")
	if !found {
		return value
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return value
	}

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour
	switch {
	case hour > 12:
		display = hour - 12
	case hour == 0:
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, mm, period)
}

func FormatGuestCount(count int) string {
	if count == 0 {
		return ""
	}
	if count == 1 {
		return "1 Guest"
	}
	return fmt.Sprintf("%d Guests", count)
}

// Summary is the human-readable confirmation of a submitted draft.
type Summary struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Guests   string `json:"guests"`
	Occasion string `json:"occasion"`
}

func Summarize(d Draft) Summary {
	guests, _ := ParseGuests(d.Guests)
	return Summary{
		Date:     FormatDate(d.Date),
		Time:     FormatTime(d.Time),
		Guests:   FormatGuestCount(guests),
		Occasion: Occasion(d.Occasion).Label(),
	}
}
