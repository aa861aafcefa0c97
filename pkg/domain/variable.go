package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Variable references a process variable by its full engine name
// (e.g. "23LT0001:MeasuredValue") and the unit it is read or written in.
// An empty Unit means the engine's SI base unit.
type Variable struct {
	Name string `json:"name" yaml:"name"`
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// String renders the variable as "name [unit]".
func (v Variable) String() string {
	if v.Unit == "" {
		return v.Name
	}
	return fmt.Sprintf("%s [%s]", v.Name, v.Unit)
}

// Value is a reading or setpoint exchanged with the engine.
// Engines produce float64, bool or string values.
type Value = any

// Bool returns the numeric encoding of a flag (1 or 0).
func Bool(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// AsFloat coerces a value to float64. Booleans map to 1 and 0.
func AsFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case bool:
		return Bool(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// AsBool coerces a value to bool. Numbers are true when non-zero.
func AsBool(v Value) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return b, err == nil
	default:
		f, ok := AsFloat(v)
		if !ok {
			return false, false
		}
		return f != 0, true
	}
}

// Equal compares two values. Two strings compare exactly, anything else
// compares numerically after coercion.
func Equal(a, b Value) bool {
	sa, aIsString := a.(string)
	sb, bIsString := b.(string)
	if aIsString && bIsString {
		return sa == sb
	}
	if aIsString || bIsString {
		// "true" against a flag, "5" against a number
		fa, okA := AsFloat(a)
		fb, okB := AsFloat(b)
		if okA && okB {
			return fa == fb
		}
		ba, okA := AsBool(a)
		bb, okB := AsBool(b)
		return okA && okB && ba == bb
	}
	fa, okA := AsFloat(a)
	fb, okB := AsFloat(b)
	return okA && okB && fa == fb
}

// FormatValue renders a value for delimited text output.
func FormatValue(v Value) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	default:
		if f, ok := AsFloat(v); ok {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return fmt.Sprint(v)
	}
}
