package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		_ = SetLevel("info")
	})

	require.NoError(t, SetLevel("warn"))
	Info("hidden")
	Warnf("contrast miss on %s", "badge.foreground")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "contrast miss on badge.foreground")

	buf.Reset()
	require.NoError(t, SetLevel("debug"))
	Debugf("pivot %d", 3)
	assert.Contains(t, buf.String(), "pivot 3")
}

func TestSetLevelInvalid(t *testing.T) {
	assert.Error(t, SetLevel("loud"))
}
