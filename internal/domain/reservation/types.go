package reservation

import "errors"

var (
	ErrUnknownField    = errors.New("unknown reservation field")
	ErrUnknownOccasion = errors.New("unknown occasion")
)

const (
	MinGuests = 1
	MaxGuests = 10

	// TimePlaceholder is the label of the empty option in the time picker.
	TimePlaceholder = "Select a Time"

	DateLayout = "2006-01-02"
)

// Field identifies one entry of the reservation form.
type Field string

const (
	FieldDate     Field = "date"
	FieldTime     Field = "time"
	FieldGuests   Field = "guests"
	FieldOccasion Field = "occasion"

	// FieldSubmit keys the form-level submission error. It carries no value and no validator.
	FieldSubmit Field = "submit"
)

var inputFields = []Field{FieldDate, FieldTime, FieldGuests, FieldOccasion}

// Fields returns the input fields in form order.
func Fields() []Field {
	out := make([]Field, len(inputFields))
	copy(out, inputFields)
	return out
}

func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.IsInput() {
		return "", ErrUnknownField
	}
	return f, nil
}

func (f Field) String() string {
	return string(f)
}

func (f Field) IsInput() bool {
	switch f {
	case FieldDate, FieldTime, FieldGuests, FieldOccasion:
		return true
	default:
		return false
	}
}

type Occasion string

const (
	OccasionBirthday    Occasion = "birthday"
	OccasionAnniversary Occasion = "anniversary"
	OccasionEngagement  Occasion = "engagement"
	OccasionBusiness    Occasion = "business"
	OccasionOther       Occasion = "other"
)

var occasionLabels = map[Occasion]string{
	OccasionBirthday:    "Birthday",
	OccasionAnniversary: "Anniversary",
	OccasionEngagement:  "Engagement",
	OccasionBusiness:    "Business",
	OccasionOther:       "Other",
}

// Occasions returns the selectable occasions in display order.
func Occasions() []Occasion {
	return []Occasion{
		OccasionBirthday,
		OccasionAnniversary,
		OccasionEngagement,
		OccasionBusiness,
		OccasionOther,
	}
}

func ParseOccasion(s string) (Occasion, error) {
	o := Occasion(s)
	if !o.IsValid() {
		return "", ErrUnknownOccasion
	}
	return o, nil
}

func (o Occasion) String() string {
	return string(o)
}

func (o Occasion) IsValid() bool {
	_, ok := occasionLabels[o]
	return ok
}

// Label returns the display label, or the raw value for unknown occasions.
func (o Occasion) Label() string {
	if l, ok := occasionLabels[o]; ok {
		return l
	}
	return string(o)
}
