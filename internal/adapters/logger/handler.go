package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/pathforge/internal/ui/output"
	"go.trai.ch/pathforge/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one colored line per record:
// an optional level icon, the message, then key=value attributes.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []string
	group string
}

// NewPrettyHandler creates a PrettyHandler on w. A nil w writes to stderr.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether records at level are written.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func decoration(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " ", style.Red
	case level >= slog.LevelWarn:
		return style.Warning + " ", style.Yellow
	default:
		return "", style.Slate
	}
}

// Handle writes r.
//
//nolint:gocritic // slog.Handler requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := decoration(r.Level)

	parts := make([]string, 0, 1+len(h.attrs)+r.NumAttrs())
	parts = append(parts, icon+r.Message)
	parts = append(parts, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, h.format(a))
		return true
	})

	line := h.out.String(strings.Join(parts, " ")).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(line.String() + "\n")
	return err
}

// WithAttrs returns a handler that prefixes every record with attrs.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(next.attrs, h.attrs)
	for _, a := range attrs {
		next.attrs = append(next.attrs, h.format(a))
	}
	return &next
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	next := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	next.group = name
	return &next
}

func (h *PrettyHandler) format(a slog.Attr) string {
	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	return key + "=" + a.Value.String()
}
