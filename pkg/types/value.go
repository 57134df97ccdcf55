package types

import (
	"bytes"
	"encoding/json"
)

// Observation value kinds. The kind an activity actually stores is dictated
// by its input kind, but the store does not enforce the pairing; validation
// is advisory.
const (
	ValueAbsent   ValueKind = "absent"
	ValueBool     ValueKind = "bool"
	ValueInt      ValueKind = "int"
	ValueString   ValueKind = "string"
	ValueFlagText ValueKind = "flag_text"
)

// ValueKind tags the variant held by a Value.
type ValueKind string

// Value is the tagged union stored for one observation: absent, a boolean,
// an integer, a string, or an {enabled, text} record. The zero Value is
// absent. Values serialize in their natural JSON form (true, 3, "x",
// {"enabled":true,"text":"x"}, null) so a persisted store is
// self-describing; decoding never fails on an unrecognized shape, it yields
// the absent value instead.
type Value struct {
	kind    ValueKind
	boolVal bool
	intVal  int64
	strVal  string
	enabled bool
	text    string
}

// Absent returns the not-recorded sentinel. Distinct from any recorded
// value, including recorded false and recorded zero.
func Absent() Value {
	return Value{}
}

// Bool returns a recorded boolean value.
func Bool(b bool) Value {
	return Value{kind: ValueBool, boolVal: b}
}

// Int returns a recorded integer value.
func Int(n int64) Value {
	return Value{kind: ValueInt, intVal: n}
}

// String returns a recorded string value. The empty string is a valid
// recorded value and is distinct from absent.
func String(s string) Value {
	return Value{kind: ValueString, strVal: s}
}

// FlagText returns a recorded {enabled, text} record.
func FlagText(enabled bool, text string) Value {
	return Value{kind: ValueFlagText, enabled: enabled, text: text}
}

// Kind returns the variant tag. Any value that is not one of the recorded
// variants reports ValueAbsent.
func (v Value) Kind() ValueKind {
	switch v.kind {
	case ValueBool, ValueInt, ValueString, ValueFlagText:
		return v.kind
	}
	return ValueAbsent
}

// IsAbsent reports whether the value is the not-recorded sentinel.
func (v Value) IsAbsent() bool {
	return v.Kind() == ValueAbsent
}

// AsBool returns the boolean payload. False unless Kind is ValueBool.
func (v Value) AsBool() bool {
	return v.kind == ValueBool && v.boolVal
}

// AsInt returns the integer payload, or 0 for other kinds.
func (v Value) AsInt() int64 {
	if v.kind == ValueInt {
		return v.intVal
	}
	return 0
}

// AsString returns the string payload, or "" for other kinds.
func (v Value) AsString() string {
	if v.kind == ValueString {
		return v.strVal
	}
	return ""
}

// AsFlagText returns the {enabled, text} payload. Zero values for other
// kinds.
func (v Value) AsFlagText() (enabled bool, text string) {
	if v.kind == ValueFlagText {
		return v.enabled, v.text
	}
	return false, ""
}

// flagTextJSON is the wire form of the {enabled, text} record.
type flagTextJSON struct {
	Enabled bool   `json:"enabled"`
	Text    string `json:"text"`
}

// MarshalJSON encodes the value in its natural JSON form.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind() {
	case ValueBool:
		return json.Marshal(v.boolVal)
	case ValueInt:
		return json.Marshal(v.intVal)
	case ValueString:
		return json.Marshal(v.strVal)
	case ValueFlagText:
		return json.Marshal(flagTextJSON{Enabled: v.enabled, Text: v.text})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes any of the natural forms. Numbers are truncated to
// int64. A shape that matches none of the variants (arrays, objects
// carrying fields other than enabled/text) decodes to absent rather than
// erroring, so one odd entry cannot poison a whole stored blob or
// masquerade as a recorded value.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Absent()
		return nil
	}

	switch data[0] {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err == nil {
			*v = Bool(b)
			return nil
		}
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*v = String(s)
			return nil
		}
	case '{':
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		var ft flagTextJSON
		if err := dec.Decode(&ft); err == nil {
			*v = FlagText(ft.Enabled, ft.Text)
			return nil
		}
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err == nil {
			if n, err := num.Int64(); err == nil {
				*v = Int(n)
				return nil
			}
			if f, err := num.Float64(); err == nil {
				*v = Int(int64(f))
				return nil
			}
		}
	}

	*v = Absent()
	return nil
}
