package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

var ErrFieldValueType = errors.New("value must be a string or a number")

// FieldValue accepts a JSON string or number. Numbers are stored as their integral decimal
// form, so 4, "4", 4.7 and 4e0 are the same input.
type FieldValue string

func (v *FieldValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = FieldValue(s)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return ErrFieldValueType
	}
	if i, err := n.Int64(); err == nil {
		*v = FieldValue(strconv.FormatInt(i, 10))
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return ErrFieldValueType
	}
	*v = FieldValue(strconv.FormatFloat(math.Trunc(f), 'f', -1, 64))
	return nil
}

func (v FieldValue) String() string {
	return string(v)
}

type UpdateFieldRequest struct {
	Value *FieldValue `json:"value" binding:"required"`
}
