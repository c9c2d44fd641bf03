package diag

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONStreamsWellFormedArray(t *testing.T) {
	var buf bytes.Buffer
	delegate := NewJSON(&buf)

	delegate.Begin()
	delegate.Report(Message{
		Severity: Error,
		Position: Position{File: "a.emojic", Line: 12, Column: 4},
		Text:     "no such type",
	})
	delegate.Report(Message{
		Severity: Warning,
		Text:     "unused variable",
	})
	delegate.Finish()

	var messages []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &messages))
	require.Len(t, messages, 2)

	assert.Equal(t, "error", messages[0]["type"])
	assert.Equal(t, "a.emojic", messages[0]["file"])
	assert.Equal(t, float64(12), messages[0]["line"])
	assert.Equal(t, float64(4), messages[0]["column"])
	assert.Equal(t, "no such type", messages[0]["message"])

	assert.Equal(t, "warning", messages[1]["type"])
	assert.Equal(t, "unused variable", messages[1]["message"])
	_, ok := messages[1]["file"]
	assert.False(t, ok, "positionless message should omit file")
}

func TestJSONEmptyCompilation(t *testing.T) {
	var buf bytes.Buffer
	delegate := NewJSON(&buf)
	delegate.Begin()
	delegate.Finish()
	assert.Equal(t, "[]\n", buf.String())
}
