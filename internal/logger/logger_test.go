package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func restoreGlobal(t *testing.T) {
	t.Helper()
	prev := L
	t.Cleanup(func() { L = prev })
}

func TestInit_DisabledDiscards(t *testing.T) {
	restoreGlobal(t)

	var out bytes.Buffer
	require.NoError(t, Init(Options{Enabled: false, Output: &out}))
	Info("dropped", "k", 1)
	require.Zero(t, out.Len())
}

func TestInit_TextRespectsLevel(t *testing.T) {
	restoreGlobal(t)

	var out bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Level: slog.LevelWarn, Output: &out}))

	Debug("quiet")
	Info("quiet")
	require.Zero(t, out.Len())

	Warn("loud", "slots", 3)
	require.Contains(t, out.String(), "msg=loud")
	require.Contains(t, out.String(), "slots=3")
}

func TestInit_JSON(t *testing.T) {
	restoreGlobal(t)

	var out bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Format: "json", Level: slog.LevelDebug, Output: &out}))
	Debug("grow", "from", 2, "to", 4)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	require.Equal(t, "grow", rec["msg"])
	require.EqualValues(t, 4, rec["to"])
}

func TestInit_UnknownFormat(t *testing.T) {
	restoreGlobal(t)
	require.Error(t, Init(Options{Enabled: true, Format: "xml"}))
}

func TestOr(t *testing.T) {
	restoreGlobal(t)

	own := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	require.Same(t, own, Or(own))
	require.Same(t, L, Or(nil))
}
