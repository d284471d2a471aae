package util

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Truncate cuts s to maxWidth terminal cells, ending with an ellipsis when shortened.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return xansi.Truncate(s, maxWidth, "…")
}

// PadOrTruncate fits s to exactly width cells.
func PadOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = Truncate(s, width)
	if n := xansi.StringWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// OrDash returns "-" for empty strings, for table cells.
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
