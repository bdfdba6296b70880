package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pathforge/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing uncolored output to a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Golden(t *testing.T) {
	tests := []struct {
		name   string
		golden string
		log    func(*logger.Logger)
	}{
		{
			name:   "info",
			golden: "info_basic",
			log:    func(l *logger.Logger) { l.Info("search finished") },
		},
		{
			name:   "warn",
			golden: "warn_basic",
			log:    func(l *logger.Logger) { l.Warn("cache disabled") },
		},
		{
			name:   "error chain",
			golden: "error_chain",
			log: func(l *logger.Logger) {
				l.Error(zerr.Wrap(zerr.New("grid dimensions must be positive"), "failed to create grid"))
			},
		},
		{
			name:   "multiline error",
			golden: "error_multiline",
			log:    func(l *logger.Logger) { l.Error(errors.New("first line\nsecond line")) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.golden, buf.Bytes())
		})
	}
}

func TestLogger_NilErrorIsIgnored(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_Quiet(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetQuiet(true)

	lg.Info("hidden")
	lg.Warn("shown")
	assert.Equal(t, "! shown\n", buf.String())

	lg.SetQuiet(false)
	lg.Info("visible again")
	assert.Contains(t, buf.String(), "visible again")
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("loaded scenario")
	lg.Error(zerr.Wrap(errors.New("disk full"), "failed to write metrics"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "loaded scenario", info["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "failed to write metrics", failure["msg"])
	assert.Contains(t, failure["error"], "disk full")
}

func TestLogger_SetOutputKeepsMode(t *testing.T) {
	lg, first := newTestLogger(t)
	lg.SetJSON(true)

	second := &bytes.Buffer{}
	lg.SetOutput(second)
	lg.Warn("moved")

	assert.Empty(t, first.String())
	assert.True(t, json.Valid(bytes.TrimSpace(second.Bytes())))
}

func TestPrettyHandler_AttrsAndGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).With("algorithm", "jps").WithGroup("query")

	lg.Info("done", "expanded", 12)
	lg.Debug("filtered")

	g := goldie.New(t)
	g.Assert(t, "handler_attrs", buf.Bytes())
}

func TestCauses(t *testing.T) {
	root := errors.New("permission denied")
	err := zerr.Wrap(zerr.Wrap(root, "failed to open scenario"), "failed to load scenario")

	assert.Equal(t,
		[]string{"failed to load scenario", "failed to open scenario", "permission denied"},
		logger.Causes(err))
	assert.Equal(t, []string{"plain"}, logger.Causes(errors.New("plain")))
}

func TestFormatChain(t *testing.T) {
	got := logger.FormatChain([]string{"outer", "middle\ndetail", "inner"})
	want := "Error: outer\n\n  Caused by:\n    → middle\n      detail\n    → inner"
	assert.Equal(t, want, got)
}
