//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	"table-booking/internal/domain/reservation"
	reqdto "table-booking/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateFieldRequestDecoding(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    string
		wantNil bool
		wantErr bool
	}{
		{name: "string", body: `{"value":"2025-06-16"}`, want: "2025-06-16"},
		{name: "empty string clears", body: `{"value":""}`, want: ""},
		{name: "integer", body: `{"value":4}`, want: "4"},
		{name: "negative integer", body: `{"value":-2}`, want: "-2"},
		{name: "fraction truncates", body: `{"value":4.5}`, want: "4"},
		{name: "negative fraction truncates", body: `{"value":-2.5}`, want: "-2"},
		{name: "exponent", body: `{"value":2e1}`, want: "20"},
		{name: "fractional exponent", body: `{"value":1.5e1}`, want: "15"},
		{name: "huge exponent", body: `{"value":1e30}`, want: "1000000000000000000000000000000"},
		{name: "out of range", body: `{"value":1e400}`, wantErr: true},
		{name: "null", body: `{"value":null}`, wantNil: true},
		{name: "missing", body: `{}`, wantNil: true},
		{name: "boolean", body: `{"value":true}`, wantErr: true},
		{name: "object", body: `{"value":{"n":1}}`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req reqdto.UpdateFieldRequest
			err := json.Unmarshal([]byte(tc.body), &req)

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.wantNil {
				assert.Nil(t, req.Value)
				return
			}
			require.NotNil(t, req.Value)
			assert.Equal(t, tc.want, req.Value.String())
		})
	}
}

func TestUpdateFieldRequestGuestsBounds(t *testing.T) {
	cases := []struct {
		name string
		body string
		want reservation.FieldResult
	}{
		{name: "exponent above max", body: `{"value":2e1}`, want: reservation.FieldResult{IsValid: false, Message: reservation.MsgGuestsAboveMax}},
		{name: "fractional exponent above max", body: `{"value":1.5e1}`, want: reservation.FieldResult{IsValid: false, Message: reservation.MsgGuestsAboveMax}},
		{name: "exponent within range", body: `{"value":4e0}`, want: reservation.FieldResult{IsValid: true}},
		{name: "fraction below min", body: `{"value":0.9}`, want: reservation.FieldResult{IsValid: false, Message: reservation.MsgGuestsBelowMin}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req reqdto.UpdateFieldRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			require.NotNil(t, req.Value)

			assert.Equal(t, tc.want, reservation.ValidateGuests(req.Value.String()))
		})
	}
}
