package reservation

// Draft is the in-progress reservation. Every value is kept as the raw form input;
// an empty string means the field is absent.
type Draft struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Guests   string `json:"guests"`
	Occasion string `json:"occasion"`
}

func (d Draft) Get(f Field) (string, error) {
	switch f {
	case FieldDate:
		return d.Date, nil
	case FieldTime:
		return d.Time, nil
	case FieldGuests:
		return d.Guests, nil
	case FieldOccasion:
		return d.Occasion, nil
	default:
		return "", ErrUnknownField
	}
}

func (d *Draft) Set(f Field, value string) error {
	switch f {
	case FieldDate:
		d.Date = value
	case FieldTime:
		d.Time = value
	case FieldGuests:
		d.Guests = value
	case FieldOccasion:
		d.Occasion = value
	default:
		return ErrUnknownField
	}
	return nil
}

func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// FieldResult is the outcome of validating a single field. Message is empty when valid.
type FieldResult struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message"`
}

func valid() FieldResult {
	return FieldResult{IsValid: true}
}

func invalid(msg string) FieldResult {
	return FieldResult{IsValid: false, Message: msg}
}

// Results holds one FieldResult per input field.
type Results map[Field]FieldResult

// Ready reports whether every field passed.
func (r Results) Ready() bool {
	for _, f := range inputFields {
		res, ok := r[f]
		if !ok || !res.IsValid {
			return false
		}
	}
	return true
}

// Errors returns the messages of the invalid fields only.
func (r Results) Errors() map[Field]string {
	out := make(map[Field]string)
	for f, res := range r {
		if !res.IsValid {
			out[f] = res.Message
		}
	}
	return out
}
