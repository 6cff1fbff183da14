package brace

import (
	"fmt"
	"io"
	"math"
	"strings"
)

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

func writeSigned(w io.Writer, v int64, verb string, spec Spec) error {
	u := uint64(v)
	neg := v < 0
	if neg {
		u = -u
	}
	return writeIntVerb(w, u, neg, true, verb, spec)
}

func writeUnsigned(w io.Writer, u uint64, verb string, spec Spec) error {
	return writeIntVerb(w, u, false, false, verb, spec)
}

func writeIntVerb(w io.Writer, u uint64, neg, signed bool, verb string, spec Spec) error {
	switch verb {
	case "", "any", "d":
		return renderInt(w, u, neg, signed, 10, false, spec)
	case "b":
		return renderInt(w, u, neg, signed, 2, false, spec)
	case "o":
		return renderInt(w, u, neg, signed, 8, false, spec)
	case "x":
		return renderInt(w, u, neg, signed, 16, false, spec)
	case "X":
		return renderInt(w, u, neg, signed, 16, true, spec)
	case "c":
		if neg || u > 0xff {
			return fmt.Errorf("%w: %q needs a value in [0, 255]", ErrUnsupportedVerb, verb)
		}
		// A character front-pads like the other integer modes.
		if spec.HasWidth {
			if pad := spec.Width - 1; pad > 0 {
				if _, err := io.WriteString(w, strings.Repeat(string(fillOf(spec)), pad)); err != nil {
					return err
				}
			}
		}
		_, err := w.Write([]byte{byte(u)})
		return err
	case "B", "Bi":
		f := float64(u)
		if neg {
			f = -f
		}
		return writeSize(w, f, verb == "Bi", spec)
	}
	return fmt.Errorf("%w: %q for integer", ErrUnsupportedVerb, verb)
}

// renderInt converts the magnitude to digits in the given base, most
// significant first, then emits sign, leading padding, digits. The padding
// always sits between the sign and the digits and the alignment field is
// never consulted here; only the text renderers honor it. That asymmetry is
// deliberate and pinned by the tests.
func renderInt(w io.Writer, u uint64, neg, signed bool, base int, upper bool, spec Spec) error {
	if base < 2 || base > 36 {
		panic("brace: renderInt: base out of range")
	}
	var buf [64]byte
	i := len(buf)
	for {
		d := digitChars[u%uint64(base)]
		if upper && d > '9' {
			d -= 'a' - 'A'
		}
		i--
		buf[i] = d
		u /= uint64(base)
		if u == 0 {
			break
		}
	}
	digits := buf[i:]

	sign := ""
	switch {
	case neg:
		sign = "-"
	case signed && spec.HasWidth && spec.Width > 0:
		// Signed values requested at a width always carry a sign column.
		sign = "+"
	}
	if sign != "" {
		if _, err := io.WriteString(w, sign); err != nil {
			return err
		}
	}
	if spec.HasWidth {
		if pad := spec.Width - len(digits) - len(sign); pad > 0 {
			if _, err := io.WriteString(w, strings.Repeat(string(fillOf(spec)), pad)); err != nil {
				return err
			}
		}
	}
	_, err := w.Write(digits)
	return err
}

// AppendUint appends v rendered in the given base to dst. Digits above 9 map
// to a-z, or A-Z when upper is set; base must be in [2, 36]. The spec's
// fill and width apply the way they do inside placeholders.
func AppendUint(dst []byte, v uint64, base int, upper bool, spec Spec) []byte {
	w := appendWriter{buf: dst}
	_ = renderInt(&w, v, false, false, base, upper, spec)
	return w.buf
}

// AppendInt is AppendUint for signed values: negative values render a '-'
// before any padding, non-negative values render a '+' when the spec
// requests a width.
func AppendInt(dst []byte, v int64, base int, upper bool, spec Spec) []byte {
	u := uint64(v)
	neg := v < 0
	if neg {
		u = -u
	}
	w := appendWriter{buf: dst}
	_ = renderInt(&w, u, neg, true, base, upper, spec)
	return w.buf
}

// ParseUint parses text as an unsigned integer in the given base, which must
// be in [2, 36]. It accepts exactly the digit set of the base, never trims
// whitespace, and fails with [ErrOverflow] the moment the accumulated value
// would exceed 64 bits.
func ParseUint(s string, base int) (uint64, error) {
	if base < 2 || base > 36 {
		panic("brace: ParseUint: base out of range")
	}
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidCharacter)
	}
	var v uint64
	for i := range len(s) {
		d, ok := digitValue(s[i])
		if !ok || int(d) >= base {
			return 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, s[i], i)
		}
		if v > (math.MaxUint64-uint64(d))/uint64(base) {
			return 0, fmt.Errorf("%w: %q in base %d", ErrOverflow, s, base)
		}
		v = v*uint64(base) + uint64(d)
	}
	return v, nil
}

// ParseInt is ParseUint with an optional leading '+' or '-'.
func ParseInt(s string, base int) (int64, error) {
	neg := false
	rest := s
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		rest = s[1:]
	}
	u, err := ParseUint(rest, base)
	if err != nil {
		return 0, err
	}
	if neg {
		if u > 1<<63 {
			return 0, fmt.Errorf("%w: %q in base %d", ErrOverflow, s, base)
		}
		return -int64(u), nil
	}
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q in base %d", ErrOverflow, s, base)
	}
	return int64(u), nil
}

func digitValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'z':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 10, true
	}
	return 0, false
}
