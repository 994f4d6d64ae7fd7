package fina

import (
	"encoding/json"
	"fmt"
	"math"
)

// Percent is a percentage, 12.5 means 12.5%.
//
// An undefined percentage (a growth over a zero base) is NaN.
type Percent float64

// IsDefined reports whether p holds a number.
func (p Percent) IsDefined() bool { return !math.IsNaN(float64(p)) }

func (p Percent) Equal(q Percent) bool {
	if !p.IsDefined() || !q.IsDefined() {
		return !p.IsDefined() && !q.IsDefined()
	}
	// it has to be compared with some precision
	const precision = 0.0001
	return math.Abs(float64(p-q)) < precision
}

func (p Percent) String() string {
	if !p.IsDefined() {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	if !p.IsDefined() {
		return "n/a"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// MarshalJSON encodes an undefined percentage as null.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.IsDefined() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(p))
}

func (p *Percent) UnmarshalJSON(b []byte) error {
	var v *float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == nil {
		*p = Percent(math.NaN())
		return nil
	}
	*p = Percent(*v)
	return nil
}

var _ json.Marshaler = Percent(0)
var _ json.Unmarshaler = (*Percent)(nil)
