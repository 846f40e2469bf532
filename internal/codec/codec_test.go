package codec

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"Simple object", map[string]any{"a": 1}, `{"a":1}`},
		{"String", "hello", `"hello"`},
		{"Unicode unescaped", map[string]any{"name": "日本語"}, `{"name":"日本語"}`},
		{"HTML chars unescaped", map[string]any{"q": "a<b&c>d"}, `{"q":"a<b&c>d"}`},
		{"Control char escaped", "a\nb", `"a\nb"`},
		{"Nested", map[string]any{"x": []any{1, "two", nil}}, `{"x":[1,"two",null]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Serialize(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestSerializeNonSerializable(t *testing.T) {
	_, err := Serialize(map[string]any{"ch": make(chan int)})
	assert.Error(t, err)

	_, err = Serialize(func() {})
	assert.Error(t, err)
}

func TestDeserializeObject(t *testing.T) {
	m, err := DeserializeObject([]byte(`{"iss":"https://api.example.com","uid":1}`))
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", m["iss"])
	assert.Equal(t, float64(1), m["uid"])
}

func TestDeserializeObjectFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Syntax error", `{"a":`},
		{"Bare control character", "{\"a\":\"\x01\"}"},
		{"Not an object", `[1,2,3]`},
		{"Scalar", `42`},
		{"Literal null", `null`},
		{"Empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeserializeObject([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestDeserializeObjectExcessiveNesting(t *testing.T) {
	depth := 20000
	input := strings.Repeat(`{"a":`, depth) + "1" + strings.Repeat("}", depth)
	_, err := DeserializeObject([]byte(input))
	assert.Error(t, err)
}

func TestSegmentRoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte(""),
		[]byte("f"),
		[]byte("fo"),
		[]byte("foo"),
		[]byte(`{"typ":"JWT","alg":"HS256"}`),
		{0x00, 0xFF, 0x7F, 0x80},
	}

	for _, in := range inputs {
		encoded := EncodeSegment(in)
		assert.NotContains(t, encoded, "=")
		assert.NotContains(t, encoded, "+")
		assert.NotContains(t, encoded, "/")

		decoded, err := DecodeSegment(encoded)
		require.NoError(t, err)
		assert.Equal(t, in, decoded)
	}
}

func TestDecodeSegmentAcceptsPadded(t *testing.T) {
	padded := base64.URLEncoding.EncodeToString([]byte("hello"))
	require.Contains(t, padded, "=")

	decoded, err := DecodeSegment(padded)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), decoded)
}

func TestDecodeSegmentFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Standard alphabet plus", "ab+c"},
		{"Standard alphabet slash", "ab/c"},
		{"Whitespace", "ab c"},
		{"Newline", "ab\ncd"},
		{"Invalid length after repadding", "abcde"},
		{"Non-ASCII", "ab§c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSegment(tt.input)
			assert.Error(t, err)
		})
	}
}
