package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Yahoo payloads mix encodings freely: weeks arrive as 7 or "7", flags as
// 1, "1", or true. The Flex types absorb that at the JSON boundary so the
// rest of the code only sees Go values.

// FlexInt decodes from a JSON number or a numeric string. Anything else
// decodes to 0 rather than failing the whole payload.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}

// FlexBool decodes 1, "1", and true as true; everything else is false.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	*f = s == "1" || s == "true"
	return nil
}

func (f FlexBool) Bool() bool {
	return bool(f)
}

// FlexFloat decodes from a JSON number or numeric string. Nil means the
// value was absent or not numeric; a NaN never escapes this type.
type FlexFloat struct {
	Value float64
	Valid bool
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return nil
	}
	f.Value = v
	f.Valid = true
	return nil
}

func (f FlexFloat) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

var _ json.Unmarshaler = (*FlexInt)(nil)
var _ json.Unmarshaler = (*FlexBool)(nil)
var _ json.Unmarshaler = (*FlexFloat)(nil)
