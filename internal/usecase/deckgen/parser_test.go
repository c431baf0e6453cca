package deckgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```":          `{"a":1}`,
		"```\n{\"a\":1}\n```":              `{"a":1}`,
		"Here is the result: {\"a\":1}.":   `{"a":1}`,
		`{"a":1}`:                          `{"a":1}`,
		"Sure! {\"a\": {\"b\": 2}} Done.":  `{"a": {"b": 2}}`,
	}
	for in, want := range cases {
		assert.Equal(t, want, extractJSON(in))
	}
}

func TestUnmarshalModelJSON_RepairsDefects(t *testing.T) {
	var out struct {
		Items []string `json:"items"`
	}

	// Trailing comma is a common model defect; the repair pass should fix it.
	err := unmarshalModelJSON(`{"items": ["a", "b",]}`, &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out.Items)
}

func TestUnmarshalModelJSON_RejectsGarbage(t *testing.T) {
	var out map[string]interface{}
	assert.Error(t, unmarshalModelJSON("", &out))
	assert.Error(t, unmarshalModelJSON("no json here at all", &out))
}
