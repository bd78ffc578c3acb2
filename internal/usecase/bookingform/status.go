package bookingform

type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Outcome is how one submission attempt ended.
type Outcome int

const (
	// OutcomeInvalid: validation failed and the backend was never called.
	OutcomeInvalid Outcome = iota
	OutcomeConfirmed
	OutcomeFailed
	// OutcomeDiscarded: the attempt was reset or cancelled before it resolved; form state was left alone.
	OutcomeDiscarded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeFailed:
		return "failed"
	case OutcomeDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}
