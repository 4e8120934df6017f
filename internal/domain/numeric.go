package domain

import (
	"bytes"
	"strconv"
)

// Amount is a decimal field that decodes defensively. The upstream data is
// partially malformed: numeric fields arrive as numbers, numeric strings,
// null, or garbage. Anything unparseable decodes to zero so a bad record
// never breaks rendering.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount(parseOrZero(data))
	return nil
}

// Count is the integer counterpart of Amount. Fractional input truncates.
type Count int

// UnmarshalJSON implements json.Unmarshaler.
func (c *Count) UnmarshalJSON(data []byte) error {
	*c = Count(parseOrZero(data))
	return nil
}

// parseOrZero is the single coercion point for all upstream numeric fields.
func parseOrZero(data []byte) float64 {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
