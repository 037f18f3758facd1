package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvLoggerDebugGating(t *testing.T) {
	t.Setenv(DebugEnvVar, "")
	silent := NewEnvLogger("[test]").(*envLogger)
	assert.False(t, silent.debug)

	t.Setenv(DebugEnvVar, "1")
	verbose := NewEnvLogger("[test]").(*envLogger)
	assert.True(t, verbose.debug)
}

func TestEnvLoggerOutput(t *testing.T) {
	var buf strings.Builder
	l := &envLogger{out: &buf, prefix: "[gen]", debug: false}

	l.Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Info("wrote %d frames", 46)
	assert.Equal(t, "[gen] wrote 46 frames\n", buf.String())

	buf.Reset()
	l.Warn("slow disk")
	assert.Equal(t, "[gen] WARN: slow disk\n", buf.String())

	buf.Reset()
	l.Error("write failed: %v", "disk full")
	assert.Equal(t, "[gen] ERROR: write failed: disk full\n", buf.String())
}

func TestEnvLoggerDebugWhenEnabled(t *testing.T) {
	var buf strings.Builder
	l := &envLogger{out: &buf, prefix: "[gen]", debug: true}

	l.Debug("frame %d of %d", 3, 46)
	assert.Equal(t, "[gen] frame 3 of 46\n", buf.String())
}

func TestNoopDiscardsEverything(t *testing.T) {
	l := Noop()

	// Must not panic; nothing observable to assert beyond that
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
}

func TestBufferLoggerCapture(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("composing %s", "demo")
	l.Info("generated %d frames", 46)
	l.Error("boom")

	require.Len(t, l.Messages, 3)
	assert.Equal(t, LogMessage{Level: "debug", Message: "composing demo"}, l.Messages[0])
	assert.Equal(t, LogMessage{Level: "info", Message: "generated 46 frames"}, l.Messages[1])

	assert.True(t, l.HasLevel("info"))
	assert.True(t, l.HasLevel("error"))
	assert.False(t, l.HasLevel("warn"))

	assert.True(t, l.Contains("46 frames"))
	assert.False(t, l.Contains("manifest"))
}
