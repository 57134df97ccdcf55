package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueZeroIsAbsent(t *testing.T) {
	var v Value
	assert.True(t, v.IsAbsent())
	assert.Equal(t, ValueAbsent, v.Kind())
	assert.Equal(t, Absent(), v)
}

func TestValueJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		wire string
	}{
		{name: "absent", v: Absent(), wire: `null`},
		{name: "bool true", v: Bool(true), wire: `true`},
		{name: "bool false", v: Bool(false), wire: `false`},
		{name: "int", v: Int(3), wire: `3`},
		{name: "negative int", v: Int(-2), wire: `-2`},
		{name: "string", v: String("Book: New"), wire: `"Book: New"`},
		{name: "empty string", v: String(""), wire: `""`},
		{name: "flag text enabled", v: FlagText(true, "notes"), wire: `{"enabled":true,"text":"notes"}`},
		{name: "flag text disabled", v: FlagText(false, "x"), wire: `{"enabled":false,"text":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.v)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wire, string(got))

			var back Value
			require.NoError(t, json.Unmarshal(got, &back))
			assert.Equal(t, tt.v, back)
		})
	}
}

func TestValueUnmarshalForeignShapes(t *testing.T) {
	tests := []struct {
		name string
		wire string
		want Value
	}{
		{name: "null", wire: `null`, want: Absent()},
		{name: "array becomes absent", wire: `[1,2]`, want: Absent()},
		{name: "float truncates", wire: `2.9`, want: Int(2)},
		{name: "foreign object becomes absent", wire: `{"other":1}`, want: Absent()},
		{name: "record with extra field becomes absent", wire: `{"enabled":true,"text":"x","other":1}`, want: Absent()},
		{name: "partial record keeps zero defaults", wire: `{"enabled":true}`, want: FlagText(true, "")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(tt.wire), &v))
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestValueAccessorsAcrossKinds(t *testing.T) {
	// Accessors are total: the wrong accessor returns a zero value, never
	// panics.
	assert.False(t, Int(7).AsBool())
	assert.Zero(t, Bool(true).AsInt())
	assert.Equal(t, "", Int(7).AsString())
	enabled, text := String("x").AsFlagText()
	assert.False(t, enabled)
	assert.Empty(t, text)
}

func TestRecordedFalsyDistinctFromAbsent(t *testing.T) {
	assert.False(t, Bool(false).IsAbsent())
	assert.False(t, String("").IsAbsent())
	assert.False(t, Int(0).IsAbsent())
	assert.NotEqual(t, Absent(), Bool(false))
}
