//go:build unit

package reservation_test

import (
	"strconv"
	"testing"
	"time"

	"table-booking/internal/domain/reservation"
	"table-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.June, 15, 18, 45, 0, 0, time.UTC)

type fieldCase struct {
	name    string
	value   string
	valid   bool
	message string
}

func runFieldCases(t *testing.T, field reservation.Field, cases []fieldCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := field.Validate(c.value, now)
			require.NoError(t, err)

			assert.Equal(t, c.valid, actual.IsValid)
			if c.valid {
				assert.Empty(t, actual.Message)
			} else {
				assert.Equal(t, c.message, actual.Message)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	runFieldCases(t, reservation.FieldDate, []fieldCase{
		{name: "empty", value: "", message: reservation.MsgDateRequired},
		{name: "whitespace only", value: "  ", message: reservation.MsgDateRequired},
		{name: "not a date", value: "invalid", message: reservation.MsgDateRequired},
		{name: "padded date", value: " 2025-06-20", message: reservation.MsgDateRequired},
		{name: "trailing space", value: "2025-06-20 ", message: reservation.MsgDateRequired},
		{name: "impossible calendar day", value: "2025-02-30", message: reservation.MsgDateRequired},
		{name: "long past", value: "2020-01-01", message: reservation.MsgDatePast},
		{name: "yesterday", value: "2025-06-14", message: reservation.MsgDatePast},
		{name: "today ignores time of day", value: "2025-06-15", valid: true},
		{name: "tomorrow", value: "2025-06-16", valid: true},
		{name: "next year", value: "2026-01-01", valid: true},
	})

	t.Run("past message mentions future date", func(t *testing.T) {
		actual := reservation.ValidateDate("2020-01-01", now)
		assert.Contains(t, actual.Message, "future date")
	})

	t.Run("day boundary follows the location of now", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		lateUTC := time.Date(2025, time.June, 15, 20, 0, 0, 0, time.UTC) // already 16th in Tokyo

		assert.True(t, reservation.ValidateDate("2025-06-15", lateUTC).IsValid)
		assert.False(t, reservation.ValidateDate("2025-06-15", lateUTC.In(tokyo)).IsValid)
	})
}

func TestValidateTime(t *testing.T) {
	runFieldCases(t, reservation.FieldTime, []fieldCase{
		{name: "empty", value: "", message: reservation.MsgTimeRequired},
		{name: "placeholder label", value: "Select a Time", message: reservation.MsgTimeRequired},
		{name: "slot", value: "18:00", valid: true},
		{name: "any non-placeholder token", value: "not-a-slot", valid: true},
	})
}

func TestValidateGuests(t *testing.T) {
	runFieldCases(t, reservation.FieldGuests, []fieldCase{
		{name: "empty", value: "", message: reservation.MsgGuestsRequired},
		{name: "non numeric", value: "abc", message: reservation.MsgGuestsRequired},
		{name: "sign only", value: "-", message: reservation.MsgGuestsRequired},
		{name: "zero", value: "0", message: reservation.MsgGuestsBelowMin},
		{name: "negative", value: "-3", message: reservation.MsgGuestsBelowMin},
		{name: "minimum", value: "1", valid: true},
		{name: "middle", value: "5", valid: true},
		{name: "maximum", value: "10", valid: true},
		{name: "above maximum", value: "11", message: reservation.MsgGuestsAboveMax},
		{name: "far above maximum", value: "15", message: reservation.MsgGuestsAboveMax},
		{name: "huge digit run", value: "99999999999999999999", message: reservation.MsgGuestsAboveMax},
		{name: "leading spaces", value: "  4", valid: true},
		{name: "trailing text", value: "4 guests", valid: true},
		{name: "decimal truncates", value: "3.7", valid: true},
	})

	t.Run("messages carry the bounds", func(t *testing.T) {
		assert.Contains(t, reservation.ValidateGuests("0").Message, "at least 1")
		assert.Contains(t, reservation.ValidateGuests("15").Message, "cannot exceed 10")
	})

	t.Run("valid iff parsed value within bounds", func(t *testing.T) {
		for g := -5; g <= 20; g++ {
			value := strconv.Itoa(g)
			n, ok := reservation.ParseGuests(value)
			require.True(t, ok, value)
			assert.Equal(t, n >= reservation.MinGuests && n <= reservation.MaxGuests, reservation.ValidateGuests(value).IsValid, value)
		}
	})
}

func TestValidateOccasion(t *testing.T) {
	runFieldCases(t, reservation.FieldOccasion, []fieldCase{
		{name: "empty", value: "", message: reservation.MsgOccasionRequired},
		{name: "known occasion", value: "birthday", valid: true},
		{name: "membership not checked", value: "graduation", valid: true},
	})
}

func TestValidateDraft(t *testing.T) {
	t.Run("complete draft is ready", func(t *testing.T) {
		draft := builder.NewDraftBuilder(now).Build()

		results := reservation.ValidateDraft(draft, now)

		require.Len(t, results, 4)
		assert.True(t, results.Ready())
		assert.Empty(t, results.Errors())
	})

	t.Run("invalid draft reports every field", func(t *testing.T) {
		draft := reservation.Draft{Guests: "0"}

		results := reservation.ValidateDraft(draft, now)

		assert.False(t, results.Ready())
		assert.Equal(t, map[reservation.Field]string{
			reservation.FieldDate:     reservation.MsgDateRequired,
			reservation.FieldTime:     reservation.MsgTimeRequired,
			reservation.FieldGuests:   reservation.MsgGuestsBelowMin,
			reservation.FieldOccasion: reservation.MsgOccasionRequired,
		}, results.Errors())
	})

	t.Run("one bad field blocks submission", func(t *testing.T) {
		draft := builder.NewDraftBuilder(now).With(func(b *builder.DraftBuilder) { b.Time = reservation.TimePlaceholder }).Build()

		results := reservation.ValidateDraft(draft, now)

		assert.False(t, results.Ready())
		assert.Equal(t, map[reservation.Field]string{reservation.FieldTime: reservation.MsgTimeRequired}, results.Errors())
	})

	t.Run("missing entry is not ready", func(t *testing.T) {
		results := reservation.Results{reservation.FieldDate: {IsValid: true}}
		assert.False(t, results.Ready())
	})
}

func TestFieldValidateUnknown(t *testing.T) {
	_, err := reservation.FieldSubmit.Validate("x", now)
	require.ErrorIs(t, err, reservation.ErrUnknownField)

	_, err = reservation.ParseField("email")
	require.ErrorIs(t, err, reservation.ErrUnknownField)

	f, err := reservation.ParseField("guests")
	require.NoError(t, err)
	assert.Equal(t, reservation.FieldGuests, f)
}
