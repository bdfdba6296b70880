package logger

import (
	"errors"
	"strings"
)

// messager is implemented by zerr errors, whose Message excludes the wrapped cause.
type messager interface {
	Message() string
}

// causes lists err's own message followed by the messages of each wrapped
// cause. The walk stops at the first error that does not expose Message,
// using its full text.
func causes(err error) []string {
	var out []string
	for cur := err; cur != nil; {
		m, ok := cur.(messager)
		if !ok {
			out = append(out, cur.Error())
			break
		}
		out = append(out, m.Message())
		cur = errors.Unwrap(cur)
	}
	return out
}

// formatChain renders
//
//	Error: <first>
//
//	  Caused by:
//	    → <cause>
//
// with continuation lines indented under their first line.
func formatChain(chain []string) string {
	var b strings.Builder
	for i, msg := range chain {
		lines := strings.Split(msg, "\n")
		head, indent := "    → ", "      "
		if i == 0 {
			head, indent = "Error: ", "       "
		} else {
			b.WriteByte('\n')
			if i == 1 {
				b.WriteString("\n  Caused by:\n")
			}
		}
		b.WriteString(head + lines[0])
		for _, line := range lines[1:] {
			b.WriteString("\n" + indent + line)
		}
	}
	return b.String()
}
