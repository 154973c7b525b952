package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, lvl Level, f Format) *StdLogger {
	l := New(Options{Level: lvl, Format: f, App: "animals-registry", Out: buf}).(*StdLogger)
	l.now = func() time.Time { return time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC) }
	return l
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel("error"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("verbose"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("logfmt"))
}

func TestLogger_TextIsSortedAndFiltered(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, Info, FormatText)

	l.Debug("hidden", nil)
	l.Info("refreshed", map[string]any{"count": 2, "": "skip"})

	assert.Equal(t,
		"app=animals-registry count=2 level=info msg=refreshed ts=2026-02-01T12:00:00Z\n",
		buf.String())
}

func TestLogger_JSONWithFieldsAndErrors(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, Debug, FormatJSON)

	l.With(map[string]any{"request_id": "r-1"}).Warn("refresh failed", map[string]any{
		"err": errors.New("connection refused"),
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, "animals-registry", entry["app"])
	assert.Equal(t, "connection refused", entry["err"])
}

func TestLogger_WithDoesNotLeakIntoParent(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, Info, FormatText)

	_ = l.With(map[string]any{"child": true})
	l.Info("parent", nil)

	assert.NotContains(t, buf.String(), "child")
}

func TestNop(t *testing.T) {
	// no debe escribir ni romper
	Nop().Error("ignored", map[string]any{"x": 1})
}
