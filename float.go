package brace

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
)

// float32 carries at most 9 significant decimal digits worth of information.
const maxFloat32Digits = 9

func writeFloat(w io.Writer, f float64, bits int, verb string, spec Spec) error {
	switch verb {
	case "", "any", "e":
		return writeFloatSci(w, f, bits, false, spec)
	case "E":
		return writeFloatSci(w, f, bits, true, spec)
	case "d":
		return writeFloatDec(w, f, bits, spec)
	case "B", "Bi":
		return writeSize(w, f, verb == "Bi", spec)
	}
	return fmt.Errorf("%w: %q for float", ErrUnsupportedVerb, verb)
}

// decompose obtains the shortest round-trip decimal digits of a positive
// finite float from strconv, normalized so the value is 0.digits x 10^exp
// with digits[0] != '0'.
func decompose(f float64, bits int) ([]byte, int) {
	var buf [32]byte
	s := strconv.AppendFloat(buf[:0], f, 'e', -1, bits)
	e := bytes.IndexByte(s, 'e')
	exp, _ := strconv.Atoi(string(s[e+1:]))
	digits := make([]byte, 0, e)
	digits = append(digits, s[0])
	if e > 1 {
		digits = append(digits, s[2:e]...)
	}
	return digits, exp + 1
}

// roundDigits keeps n significant digits, rounding half away from zero. A
// carry out of the leading digit renormalizes to a lone '1' and bumps the
// exponent.
func roundDigits(digits []byte, n, exp int) ([]byte, int) {
	if n < 0 {
		n = 0
	}
	if n >= len(digits) {
		return digits, exp
	}
	up := digits[n] >= '5'
	digits = digits[:n]
	if up {
		i := n - 1
		for i >= 0 {
			if digits[i] < '9' {
				digits[i]++
				break
			}
			digits[i] = '0'
			i--
		}
		if i < 0 {
			digits = append(digits[:0], '1')
			exp++
		}
	}
	return digits, exp
}

func writeFloatSci(w io.Writer, f float64, bits int, upper bool, spec Spec) error {
	e := byte('e')
	if upper {
		e = 'E'
	}
	if math.IsNaN(f) {
		_, err := io.WriteString(w, "nan")
		return err
	}
	if math.Signbit(f) {
		if _, err := io.WriteString(w, "-"); err != nil {
			return err
		}
		f = -f
	}
	if math.IsInf(f, 1) {
		_, err := io.WriteString(w, "inf")
		return err
	}
	if f == 0 {
		return emitSci(w, []byte{'0'}, 1, e, spec)
	}
	digits, exp := decompose(f, bits)
	if spec.HasPrecision {
		digits, exp = roundDigits(digits, spec.Precision+1, exp)
	} else if bits == 32 && len(digits) > maxFloat32Digits {
		digits = digits[:maxFloat32Digits]
	}
	return emitSci(w, digits, exp, e, spec)
}

// emitSci writes one leading digit, the fraction, and a forced-sign exponent
// zero-padded to at least two digits.
func emitSci(w io.Writer, digits []byte, exp int, e byte, spec Spec) error {
	out := make([]byte, 0, len(digits)+8)
	out = append(out, digits[0])
	if spec.HasPrecision {
		if spec.Precision > 0 {
			out = append(out, '.')
			for j := range spec.Precision {
				if j+1 < len(digits) {
					out = append(out, digits[j+1])
				} else {
					out = append(out, '0')
				}
			}
		}
	} else if len(digits) > 1 {
		out = append(out, '.')
		out = append(out, digits[1:]...)
	}
	out = append(out, e)
	ev := exp - 1
	if ev < 0 {
		out = append(out, '-')
		ev = -ev
	} else {
		out = append(out, '+')
	}
	if ev < 10 {
		out = append(out, '0')
	}
	out = strconv.AppendInt(out, int64(ev), 10)
	_, err := w.Write(out)
	return err
}

func writeFloatDec(w io.Writer, f float64, bits int, spec Spec) error {
	if math.IsNaN(f) {
		_, err := io.WriteString(w, "nan")
		return err
	}
	if math.Signbit(f) {
		if _, err := io.WriteString(w, "-"); err != nil {
			return err
		}
		f = -f
	}
	if math.IsInf(f, 1) {
		_, err := io.WriteString(w, "inf")
		return err
	}
	if f == 0 {
		return emitFixed(w, nil, 0, spec)
	}
	digits, exp := decompose(f, bits)
	if spec.HasPrecision {
		digits, exp = roundDigits(digits, exp+spec.Precision, exp)
	}
	return emitFixed(w, digits, exp, spec)
}

// emitFixed splits the normalized digits on the decimal exponent: digit k
// (zero-based) sits at place value 10^(exp-1-k), so the whole part covers
// k < exp and fractional position j maps to k = exp-1+j.
func emitFixed(w io.Writer, digits []byte, exp int, spec Spec) error {
	out := make([]byte, 0, len(digits)+4)
	if exp <= 0 {
		out = append(out, '0')
	} else {
		for k := range exp {
			if k < len(digits) {
				out = append(out, digits[k])
			} else {
				out = append(out, '0')
			}
		}
	}
	if spec.HasPrecision {
		if spec.Precision > 0 {
			out = append(out, '.')
			for j := 1; j <= spec.Precision; j++ {
				k := exp - 1 + j
				if k >= 0 && k < len(digits) {
					out = append(out, digits[k])
				} else {
					out = append(out, '0')
				}
			}
		}
	} else if exp < len(digits) {
		out = append(out, '.')
		for k := exp; k < 0; k++ {
			out = append(out, '0')
		}
		if exp < 0 {
			out = append(out, digits...)
		} else {
			out = append(out, digits[exp:]...)
		}
	}
	_, err := w.Write(out)
	return err
}
