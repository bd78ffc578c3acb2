package response

import (
	"table-booking/internal/usecase/readmodel"
)

type SessionResponse struct {
	ID             string            `json:"id"`
	Draft          DraftResponse     `json:"draft"`
	Errors         map[string]string `json:"errors"`
	Touched        []string          `json:"touched"`
	Status         string            `json:"status"`
	IsSubmitting   bool              `json:"isSubmitting"`
	AvailableTimes []string          `json:"availableTimes"`
}

type DraftResponse struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Guests   string `json:"guests"`
	Occasion string `json:"occasion"`
}

type AvailabilityResponse struct {
	Date     string   `json:"date"`
	Times    []string `json:"times"`
	Fallback bool     `json:"fallback"`
}

type OccasionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type OptionsResponse struct {
	Occasions       []OccasionResponse `json:"occasions"`
	MinGuests       int                `json:"minGuests"`
	MaxGuests       int                `json:"maxGuests"`
	TimePlaceholder string             `json:"timePlaceholder"`
	DefaultTimes    []string           `json:"defaultTimes"`
}

type ConfirmationResponse struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Guests   string `json:"guests"`
	Occasion string `json:"occasion"`
}

type SubmitResponse struct {
	Outcome      string                `json:"outcome"`
	Confirmation *ConfirmationResponse `json:"confirmation,omitempty"`
	Session      *SessionResponse      `json:"session"`
}

func FromSessionRM(rm *readmodel.SessionRM) *SessionResponse {
	if rm == nil {
		return nil
	}
	errors := rm.Errors
	if errors == nil {
		errors = map[string]string{}
	}
	touched := rm.Touched
	if touched == nil {
		touched = []string{}
	}
	return &SessionResponse{
		ID: rm.ID.String(),
		Draft: DraftResponse{
			Date:     rm.Date,
			Time:     rm.Time,
			Guests:   rm.Guests,
			Occasion: rm.Occasion,
		},
		Errors:         errors,
		Touched:        touched,
		Status:         rm.Status,
		IsSubmitting:   rm.IsSubmitting,
		AvailableTimes: rm.AvailableTimes,
	}
}

func FromAvailabilityRM(rm *readmodel.AvailabilityRM) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:     rm.Date,
		Times:    rm.Times,
		Fallback: rm.Fallback,
	}
}

func FromOptionsRM(rm *readmodel.OptionsRM) *OptionsResponse {
	occasions := make([]OccasionResponse, len(rm.Occasions))
	for i, o := range rm.Occasions {
		occasions[i] = OccasionResponse{Value: o.Value, Label: o.Label}
	}
	return &OptionsResponse{
		Occasions:       occasions,
		MinGuests:       rm.MinGuests,
		MaxGuests:       rm.MaxGuests,
		TimePlaceholder: rm.TimePlaceholder,
		DefaultTimes:    rm.DefaultTimes,
	}
}

func FromSubmitResultRM(rm *readmodel.SubmitResultRM) *SubmitResponse {
	resp := &SubmitResponse{
		Outcome: rm.Outcome,
		Session: FromSessionRM(rm.Session),
	}
	if c := rm.Confirmation; c != nil {
		resp.Confirmation = &ConfirmationResponse{
			Date:     c.Date,
			Time:     c.Time,
			Guests:   c.Guests,
			Occasion: c.Occasion,
		}
	}
	return resp
}
