package fina

import (
	"encoding/json"
	"fmt"
)

// Ratio is a multiple that may be unknown.
//
// The zero Ratio is absent, which is not the same as a ratio of zero.
type Ratio struct {
	value float64
	valid bool
}

// NewRatio returns a known ratio.
func NewRatio(v float64) Ratio { return Ratio{value: v, valid: true} }

// Get returns the value and whether it is known.
func (r Ratio) Get() (float64, bool) { return r.value, r.valid }

// IsSet reports whether the ratio is known.
func (r Ratio) IsSet() bool { return r.valid }

func (r Ratio) String() string {
	if !r.valid {
		return "-"
	}
	return fmt.Sprintf("%.2f", r.value)
}

// MarshalJSON encodes an absent ratio as null.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.value)
}

func (r *Ratio) UnmarshalJSON(b []byte) error {
	var v *float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == nil {
		*r = Ratio{}
		return nil
	}
	*r = NewRatio(*v)
	return nil
}

var _ json.Marshaler = Ratio{}
var _ json.Unmarshaler = (*Ratio)(nil)
