package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		m := map[string]any{}
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestFields_Constructors(t *testing.T) {
	err := errors.New("boom")

	require.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	require.Equal(t, Field{Key: "k", Value: 1}, Int("k", 1))
	require.Equal(t, Field{Key: "k", Value: int64(2)}, Int64("k", 2))
	require.Equal(t, Field{Key: "k", Value: time.Second}, Duration("k", time.Second))
	require.Equal(t, Field{Key: "err", Value: err}, Err(err))
}

func TestNopLogger_NoPanic(t *testing.T) {
	l := Nop()
	l.Debug("d", String("k", "v"))
	l.Info("i", Int("n", 1))
	l.Warn("w")
	l.Error("e", Err(errors.New("x")))

	require.NotNil(t, l.With(String("x", "y")))
	require.NoError(t, l.Sync())
}

func TestSlogJSON_WritesFieldsAndRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogJSON(&buf, "info").With(String("svc", "cursos"))

	l.Debug("hidden")
	l.Info("list served", Int("pagina", 2), Err(errors.New("boom")))
	require.NoError(t, l.Sync())

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "list served", lines[0]["msg"])
	require.Equal(t, "cursos", lines[0]["svc"])
	require.Equal(t, float64(2), lines[0]["pagina"])
	require.Equal(t, "boom", lines[0]["err"])
}

func TestSlogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, slogLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, slogLevel("warning"))
	require.Equal(t, slog.LevelError, slogLevel("error"))
	require.Equal(t, slog.LevelInfo, slogLevel("nonsense"))
}

func TestSlogAdapter_AllLevels(t *testing.T) {
	l := NewSlogAdapter(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})))
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")
	require.NoError(t, l.Sync())
}

func TestZerologJSON_WritesTypedFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologJSON(&buf, "debug").With(String("svc", "cursos"))

	l.Debug("d", Duration("took", time.Millisecond))
	l.Warn("w", Int64("id", 5), Any("extra", map[string]int{"a": 1}))
	l.Error("e", Err(errors.New("boom")))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)
	require.Equal(t, "debug", lines[0]["level"])
	require.Equal(t, "cursos", lines[0]["svc"])
	require.Equal(t, float64(5), lines[1]["id"])
	require.Equal(t, "boom", lines[2]["err"])
}

func TestZerologJSON_LevelFilterAndFallback(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologJSON(&buf, "not-a-level")

	l.Debug("hidden")
	l.Info("shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "shown", lines[0]["message"])
}

func TestZerologAdapter_DisabledLevelIsSafe(t *testing.T) {
	l := NewZerologAdapter(zerolog.Nop())
	l.Info("x", String("k", "v"))
	require.NoError(t, l.Sync())
}
