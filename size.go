package brace

import (
	"io"
	"math"
)

var (
	siPrefixes  = [...]string{"", "k", "M", "G", "T", "P", "E", "Z", "Y"}
	iecPrefixes = [...]string{"", "K", "M", "G", "T", "P", "E", "Z", "Y"}
)

// writeSize renders v as a memory size: base 1000 with SI prefixes, or base
// 1024 with IEC prefixes (suffixed i before the B). The magnitude step is
// floor(log_base(v)) clamped to the prefix table; the scaled quotient goes
// through the fixed-point float renderer.
func writeSize(w io.Writer, v float64, iec bool, spec Spec) error {
	if math.Signbit(v) {
		if _, err := io.WriteString(w, "-"); err != nil {
			return err
		}
		v = -v
	}
	if v == 0 {
		_, err := io.WriteString(w, "0B")
		return err
	}
	base := 1000.0
	if iec {
		base = 1024.0
	}
	mag := 0
	for x := v; x >= base && mag < len(siPrefixes)-1; x /= base {
		mag++
	}
	q := v / math.Pow(base, float64(mag))
	if err := writeFloatDec(w, q, 64, spec); err != nil {
		return err
	}
	suffix := "B"
	if mag > 0 {
		if iec {
			suffix = iecPrefixes[mag] + "iB"
		} else {
			suffix = siPrefixes[mag] + "B"
		}
	}
	_, err := io.WriteString(w, suffix)
	return err
}
