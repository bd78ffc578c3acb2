//go:build unit

package main

import (
	"bytes"
	"testing"
	"time"

	"table-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--timezone", "UTC"}, args...))

	err := root.Execute()
	return out.String(), err
}

func validDraftArgs() []string {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(reservation.DateLayout)
	return []string{"--date", tomorrow, "--time", "19:30", "--guests", "2", "--occasion", "anniversary"}
}

func TestSlotsCmd(t *testing.T) {
	t.Run("known date", func(t *testing.T) {
		out, err := run(t, "slots", "2006-01-25")
		require.NoError(t, err)
		assert.Equal(t,
			"17:00  5:00 PM\n18:00  6:00 PM\n19:30  7:30 PM\n20:00  8:00 PM\n21:00  9:00 PM\n22:30  10:30 PM\n23:00  11:00 PM\n",
			out)
	})

	t.Run("malformed date shows defaults", func(t *testing.T) {
		out, err := run(t, "slots", "someday")
		require.NoError(t, err)
		assert.Contains(t, out, "showing defaults")
		assert.Contains(t, out, "22:00  10:00 PM")
	})

	t.Run("too many args", func(t *testing.T) {
		_, err := run(t, "slots", "2006-01-25", "2006-01-26")
		assert.Error(t, err)
	})
}

func TestCheckCmd(t *testing.T) {
	t.Run("empty form lists every error", func(t *testing.T) {
		out, err := run(t, "check")
		require.ErrorIs(t, err, errNotReady)
		assert.Contains(t, out, reservation.MsgDateRequired)
		assert.Contains(t, out, reservation.MsgTimeRequired)
		assert.Contains(t, out, reservation.MsgGuestsRequired)
		assert.Contains(t, out, reservation.MsgOccasionRequired)
	})

	t.Run("too many guests", func(t *testing.T) {
		args := append([]string{"check"}, validDraftArgs()...)
		args = append(args, "--guests", "11")
		out, err := run(t, args...)
		require.ErrorIs(t, err, errNotReady)
		assert.Contains(t, out, reservation.MsgGuestsAboveMax)
	})

	t.Run("valid form", func(t *testing.T) {
		out, err := run(t, append([]string{"check"}, validDraftArgs()...)...)
		require.NoError(t, err)
		assert.Contains(t, out, "ready to submit")
	})
}

func TestSubmitCmd(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		args := append([]string{"submit", "--latency", "0", "--success-rate", "1"}, validDraftArgs()...)
		out, err := run(t, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "reservation confirmed")
		assert.Contains(t, out, "7:30 PM")
		assert.Contains(t, out, "2 Guests, Anniversary")
	})

	t.Run("rejected by backend", func(t *testing.T) {
		args := append([]string{"submit", "--latency", "0", "--success-rate", "0"}, validDraftArgs()...)
		out, err := run(t, args...)
		require.Error(t, err)
		assert.Contains(t, out, reservation.MsgSubmitFailed)
	})

	t.Run("invalid form never reaches the backend", func(t *testing.T) {
		out, err := run(t, "submit", "--latency", "0", "--time", "18:00")
		require.ErrorIs(t, err, errNotReady)
		assert.Contains(t, out, reservation.MsgDateRequired)
		assert.NotContains(t, out, reservation.MsgTimeRequired)
	})

	t.Run("success rate out of range", func(t *testing.T) {
		_, err := run(t, "submit", "--success-rate", "1.5")
		assert.Error(t, err)
	})
}
