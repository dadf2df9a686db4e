package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	raw, ok := ExtractJSONObject("Here you go:\n```json\n{\"calories\": 450}\n```\nEnjoy!")
	require.True(t, ok)
	assert.Equal(t, `{"calories": 450}`, raw)

	raw, ok = ExtractJSONObject(`{"a":{"b":1}}`)
	require.True(t, ok)
	assert.Equal(t, `{"a":{"b":1}}`, raw)

	_, ok = ExtractJSONObject("no json here")
	assert.False(t, ok)

	_, ok = ExtractJSONObject("} backwards {")
	assert.False(t, ok)
}

func TestExtractJSONArray(t *testing.T) {
	raw, ok := ExtractJSONArray("Sure! [1, 2, 3] is the list.")
	require.True(t, ok)
	assert.Equal(t, "[1, 2, 3]", raw)

	_, ok = ExtractJSONArray("{\"not\": \"an array\"}")
	assert.False(t, ok)
}
