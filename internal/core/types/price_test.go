package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(MustPrice("12.99"))
	require.NoError(t, err)
	assert.Equal(t, "12.99", string(b))

	b, err = json.Marshal(NoPrice())
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		set   bool
	}{
		{name: "number", input: `4.99`, want: "4.99", set: true},
		{name: "integer", input: `10`, want: "10", set: true},
		{name: "quoted", input: `"7.49"`, want: "7.49", set: true},
		{name: "null", input: `null`, set: false},
		{name: "empty string", input: `""`, set: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Price
			require.NoError(t, json.Unmarshal([]byte(tt.input), &p))
			assert.Equal(t, tt.set, p.IsSet())
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestPrice_UnmarshalJSON_NotAPrice(t *testing.T) {
	for _, input := range []string{`"abc"`, `"N/A"`, `{"amount":1}`, `true`} {
		p := MustPrice("1.00")
		require.NoError(t, json.Unmarshal([]byte(input), &p), input)
		assert.False(t, p.IsSet(), input)
	}
}

func TestParsePrice(t *testing.T) {
	p, err := ParsePrice([]byte(` "3.50" `))
	require.NoError(t, err)
	assert.Equal(t, "3.5", p.String())

	p, err = ParsePrice(nil)
	require.NoError(t, err)
	assert.False(t, p.IsSet())

	_, err = ParsePrice([]byte(`"N/A"`))
	assert.Error(t, err)
}

func TestPrice_InStruct(t *testing.T) {
	type row struct {
		Price Price `json:"price"`
	}

	var r row
	require.NoError(t, json.Unmarshal([]byte(`{"price":null}`), &r))
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":null}`, string(b))
}
