package monitor

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// Value is a single observed data point: headline text or an open-slot
// count, depending on what is being monitored. It serializes as a bare
// JSON string or a bare JSON number.
type Value struct {
	text    string
	count   int
	numeric bool
}

// Text wraps a string observation.
func Text(s string) Value {
	return Value{text: s}
}

// Count wraps an integer observation.
func Count(n int) Value {
	return Value{count: n, numeric: true}
}

// IsCount reports whether the value holds an integer.
func (v Value) IsCount() bool {
	return v.numeric
}

// Count returns the integer form. Zero for text values.
func (v Value) Count() int {
	return v.count
}

// Text returns the string form. Empty for count values.
func (v Value) Text() string {
	return v.text
}

// Equal compares two values by kind and content. Used for repeat
// suppression, so "5" (text) never equals 5 (count).
func (v Value) Equal(other Value) bool {
	return v == other
}

// String renders the value for logs and text output.
func (v Value) String() string {
	if v.numeric {
		return strconv.Itoa(v.count)
	}
	return v.text
}

// MarshalJSON encodes the value as a bare string or number.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.numeric {
		return json.Marshal(v.count)
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON accepts either a JSON string or a JSON integer.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Text(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Count(n)
		return nil
	}
	return fmt.Errorf("value must be a string or an integer, got %s", data)
}
