package brace

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writePadded fills s out to the spec's width, measuring display width so
// wide runes count for the columns they occupy. Left alignment pads after
// the content, Right before, Center splits with any odd column after. Text,
// byte-sequence, boolean, and null rendering come through here; the integer
// renderer does its own front padding and never consults the alignment.
func writePadded(w io.Writer, s string, spec Spec) error {
	if !spec.HasWidth {
		_, err := io.WriteString(w, s)
		return err
	}
	pad := spec.Width - runewidth.StringWidth(s)
	if pad <= 0 {
		_, err := io.WriteString(w, s)
		return err
	}
	fill := string(fillOf(spec))
	switch spec.Align {
	case AlignRight:
		if _, err := io.WriteString(w, strings.Repeat(fill, pad)); err != nil {
			return err
		}
		_, err := io.WriteString(w, s)
		return err
	case AlignCenter:
		left := pad / 2
		if _, err := io.WriteString(w, strings.Repeat(fill, left)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
		_, err := io.WriteString(w, strings.Repeat(fill, pad-left))
		return err
	default:
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
		_, err := io.WriteString(w, strings.Repeat(fill, pad))
		return err
	}
}

func fillOf(spec Spec) rune {
	if spec.Fill == 0 {
		return ' '
	}
	return spec.Fill
}
