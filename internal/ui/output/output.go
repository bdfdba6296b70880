// Package output builds termenv outputs with the color profile shared by the
// logger and the renderers.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns Ascii when NO_COLOR is set and the detected terminal
// profile otherwise.
func Profile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output on w using Profile. A nil w writes to stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, Profile(), opts...)
}

// NewWithProfile creates a termenv.Output on w with a fixed profile.
func NewWithProfile(w io.Writer, p termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	opts = append(opts, termenv.WithProfile(p), termenv.WithTTY(true))
	return termenv.NewOutput(w, opts...)
}
