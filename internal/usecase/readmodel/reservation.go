package readmodel

import (
	"github.com/google/uuid"
)

type SessionRM struct {
	ID             uuid.UUID         `json:"id"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	Guests         string            `json:"guests"`
	Occasion       string            `json:"occasion"`
	Errors         map[string]string `json:"errors"`
	Touched        []string          `json:"touched"`
	Status         string            `json:"status"`
	IsSubmitting   bool              `json:"is_submitting"`
	AvailableTimes []string          `json:"available_times"`
}

type AvailabilityRM struct {
	Date     string   `json:"date"`
	Times    []string `json:"times"`
	Fallback bool     `json:"fallback"`
}

type OccasionRM struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type OptionsRM struct {
	Occasions       []OccasionRM `json:"occasions"`
	MinGuests       int          `json:"min_guests"`
	MaxGuests       int          `json:"max_guests"`
	TimePlaceholder string       `json:"time_placeholder"`
	DefaultTimes    []string     `json:"default_times"`
}

type ConfirmationRM struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Guests   string `json:"guests"`
	Occasion string `json:"occasion"`
}

type SubmitResultRM struct {
	Outcome      string          `json:"outcome"`
	Confirmation *ConfirmationRM `json:"confirmation,omitempty"`
	Session      *SessionRM      `json:"session"`
}
