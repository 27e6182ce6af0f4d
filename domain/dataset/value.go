package dataset

import (
	"encoding/json"
	"strconv"
)

// Kind tags the scalar stored in a Value
type Kind uint8

const (
	KindMissing Kind = iota
	KindNumber
	KindText
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return "missing"
	}
}

// Value is a single cell. Only the field selected by Kind is meaningful.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Bool bool
}

// Number creates a numeric value
func Number(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// Text creates a textual value. The empty string is still text.
func Text(s string) Value {
	return Value{Kind: KindText, Str: s}
}

// Bool creates a boolean value
func Bool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// Missing creates an absent value
func Missing() Value {
	return Value{Kind: KindMissing}
}

func (v Value) IsMissing() bool { return v.Kind == KindMissing }
func (v Value) IsNumber() bool  { return v.Kind == KindNumber }
func (v Value) IsText() bool    { return v.Kind == KindText }

// Float returns the numeric payload and whether the value is a number
func (v Value) Float() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.Num, true
}

// String renders the value the way chart axes and search see it.
// Missing renders as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return FormatNumber(v.Num)
	case KindText:
		return v.Str
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// FormatNumber renders a float with the shortest representation that round-trips.
func FormatNumber(n float64) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// MarshalJSON emits the bare scalar so rows serialize as plain records
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		return json.Marshal(v.Num)
	case KindText:
		return json.Marshal(v.Str)
	case KindBool:
		return json.Marshal(v.Bool)
	default:
		return []byte("null"), nil
	}
}
