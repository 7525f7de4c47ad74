package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Client payloads send numbers both as JSON numbers and as strings
// ("filas": "5"). The Flex types accept either form and reject anything
// that cannot be coerced.

var null = []byte("null")

// FlexInt is an integer that may arrive as a JSON number or numeric string
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	raw, err := scalarText(data)
	if err != nil {
		return err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		*f = FlexInt(n)
		return nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("integer value %s out of range", string(data))
	}
	// parseInt semantics: 5.7 -> 5
	fl, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(fl) || math.IsInf(fl, 0) {
		return fmt.Errorf("invalid integer value %s", string(data))
	}
	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold
	if fl < math.MinInt64 || fl >= math.MaxInt64 {
		return fmt.Errorf("integer value %s out of range", string(data))
	}
	*f = FlexInt(int64(fl))
	return nil
}

// Int returns the value as int
func (f FlexInt) Int() int {
	return int(f)
}

// FlexFloat is a float that may arrive as a JSON number or numeric string
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	raw, err := scalarText(data)
	if err != nil {
		return err
	}
	fl, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(fl) || math.IsInf(fl, 0) {
		return fmt.Errorf("invalid numeric value %s", string(data))
	}
	*f = FlexFloat(fl)
	return nil
}

// Float64 returns the value as float64
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// FlexString is a string that may also arrive as a JSON number ("cultivo_id": 7)
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("invalid text value %s", string(data))
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the value as string
func (f FlexString) String() string {
	return string(f)
}

// FlexBool accepts true/false as well as "true"/"false"/"1"/"0"
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	raw, err := scalarText(data)
	if err != nil {
		return err
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("invalid boolean value %s", string(data))
	}
	*b = FlexBool(v)
	return nil
}

// Bool returns the value as bool
func (b FlexBool) Bool() bool {
	return bool(b)
}

// timeLayouts lists the accepted date formats, most specific first
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime parses a date or timestamp in any of the accepted layouts
func ParseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date value %q", value)
}

// FlexTime is a timestamp that accepts RFC3339 strings and plain dates
type FlexTime time.Time

// UnmarshalJSON implements json.Unmarshaler
func (t *FlexTime) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid date value %s", string(data))
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	*t = FlexTime(parsed)
	return nil
}

// Time returns the value as time.Time
func (t FlexTime) Time() time.Time {
	return time.Time(t)
}

// NullableID is an optional foreign key in an update payload. It tells
// apart a field that was omitted (Set == false) from one explicitly
// cleared with null, 0 or "" (Set == true, Valid == false).
type NullableID struct {
	Set   bool
	Valid bool
	Value uint
}

// UnmarshalJSON implements json.Unmarshaler
func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	trimmed := bytes.TrimSpace(data)
	if isNull(trimmed) || bytes.Equal(trimmed, []byte(`""`)) || bytes.Equal(trimmed, []byte("false")) {
		n.Valid = false
		n.Value = 0
		return nil
	}
	var id FlexInt
	if err := id.UnmarshalJSON(trimmed); err != nil {
		return err
	}
	if id < 0 {
		return fmt.Errorf("invalid id value %s", string(data))
	}
	n.Valid = id != 0
	n.Value = uint(id)
	return nil
}

// Ptr returns the id as a pointer, nil when cleared
func (n NullableID) Ptr() *uint {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// NullableString is an optional text column in an update payload. Like
// NullableID it tells apart an omitted field (Set == false) from one
// explicitly cleared with null (Set == true, Valid == false).
type NullableString struct {
	Set   bool
	Valid bool
	Value string
}

// UnmarshalJSON implements json.Unmarshaler
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if isNull(data) {
		n.Valid = false
		n.Value = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid text value %s", string(data))
	}
	n.Valid = true
	n.Value = s
	return nil
}

// Ptr returns the text as a pointer, nil when cleared
func (n NullableString) Ptr() *string {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// ParseID parses a path identifier into an unsigned id
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), null)
}

// scalarText returns the textual content of a JSON number or string
func scalarText(data []byte) (string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return "", fmt.Errorf("empty value")
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return "", fmt.Errorf("empty value")
		}
		return s, nil
	}
	return string(trimmed), nil
}
