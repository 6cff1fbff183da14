package brace_test

import (
	"math"
	"testing"

	"github.com/bjaus/brace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Integer rendering ---

func TestFormatIntegerRadixes(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		template string
		arg      any
		want     string
	}{
		{"{d}", 42, "42"},
		{"{}", 42, "42"},
		{"{any}", 42, "42"},
		{"{b}", 5, "101"},
		{"{o}", 8, "10"},
		{"{x}", 255, "ff"},
		{"{X}", 255, "FF"},
		{"{d}", -7, "-7"},
		{"{d}", int64(math.MinInt64), "-9223372036854775808"},
		{"{d}", uint64(math.MaxUint64), "18446744073709551615"},
	} {
		out, err := brace.Format(tc.template, tc.arg)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out, "template %q arg %v", tc.template, tc.arg)
	}
}

func TestFormatIntegerWidth(t *testing.T) {
	t.Parallel()
	// Unsigned values never grow a sign column.
	out, err := brace.Format("{x:4}", byte(0x12))
	require.NoError(t, err)
	assert.Equal(t, "  12", out)

	// Signed values at a requested width always carry one.
	out, err = brace.Format("{d:4}", 5)
	require.NoError(t, err)
	assert.Equal(t, "+  5", out)

	// The sign comes first, padding sits between sign and digits.
	out, err = brace.Format("{d:0>6}", -42)
	require.NoError(t, err)
	assert.Equal(t, "-00042", out)
}

func TestFormatCharVerb(t *testing.T) {
	t.Parallel()
	out, err := brace.Format("{c}", 65)
	require.NoError(t, err)
	assert.Equal(t, "A", out)

	// A width front-pads the character like any other integer mode.
	out, err = brace.Format("{c:4}", 65)
	require.NoError(t, err)
	assert.Equal(t, "   A", out)

	_, err = brace.Format("{c}", 300)
	assert.ErrorIs(t, err, brace.ErrUnsupportedVerb)

	_, err = brace.Format("{c}", -1)
	assert.ErrorIs(t, err, brace.ErrUnsupportedVerb)
}

func TestFormatIntegerRejectsUnknownVerb(t *testing.T) {
	t.Parallel()
	_, err := brace.Format("{q}", 1)
	assert.ErrorIs(t, err, brace.ErrUnsupportedVerb)
}

// --- Render/parse round trips ---

func TestRenderParseRoundTrip(t *testing.T) {
	t.Parallel()
	values := []uint64{0, 1, 2, 7, 10, 35, 36, 255, 4096, 999999937, math.MaxUint32, math.MaxUint64}
	for base := 2; base <= 36; base++ {
		for _, v := range values {
			text := brace.AppendUint(nil, v, base, false, brace.Spec{})
			got, err := brace.ParseUint(string(text), base)
			require.NoError(t, err, "base %d value %d text %q", base, v, text)
			assert.Equal(t, v, got, "base %d text %q", base, text)
		}
	}
}

func TestRenderParseRoundTripSigned(t *testing.T) {
	t.Parallel()
	values := []int64{0, 1, -1, 42, -42, math.MaxInt64, math.MinInt64}
	for base := 2; base <= 36; base++ {
		for _, v := range values {
			text := brace.AppendInt(nil, v, base, false, brace.Spec{})
			got, err := brace.ParseInt(string(text), base)
			require.NoError(t, err, "base %d value %d text %q", base, v, text)
			assert.Equal(t, v, got)
		}
	}
}

func TestAppendUintUppercase(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "DEADBEEF", string(brace.AppendUint(nil, 0xdeadbeef, 16, true, brace.Spec{})))
}

// --- Integer parsing ---

func TestParseUintErrors(t *testing.T) {
	t.Parallel()
	_, err := brace.ParseUint("", 10)
	assert.ErrorIs(t, err, brace.ErrInvalidCharacter)

	_, err = brace.ParseUint("12a", 10)
	assert.ErrorIs(t, err, brace.ErrInvalidCharacter)

	// Whitespace is never trimmed.
	_, err = brace.ParseUint(" 12", 10)
	assert.ErrorIs(t, err, brace.ErrInvalidCharacter)

	_, err = brace.ParseUint("18446744073709551616", 10)
	assert.ErrorIs(t, err, brace.ErrOverflow)
}

func TestParseUintMixedCase(t *testing.T) {
	t.Parallel()
	v, err := brace.ParseUint("Ff", 16)
	require.NoError(t, err)
	assert.Equal(t, uint64(255), v)
}

func TestParseIntBounds(t *testing.T) {
	t.Parallel()
	v, err := brace.ParseInt("-9223372036854775808", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), v)

	v, err = brace.ParseInt("+7", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	_, err = brace.ParseInt("9223372036854775808", 10)
	assert.ErrorIs(t, err, brace.ErrOverflow)

	_, err = brace.ParseInt("-9223372036854775809", 10)
	assert.ErrorIs(t, err, brace.ErrOverflow)
}

// --- Float rendering ---

func TestFormatFloatScientific(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		template string
		arg      float64
		want     string
	}{
		{"{e}", 1234.567, "1.234567e+03"},
		{"{}", 0.5, "5e-01"},
		{"{e}", 0, "0e+00"},
		{"{e}", 1e5, "1e+05"},
		{"{e}", 1e20, "1e+20"},
		{"{E}", 0.00123, "1.23E-03"},
		{"{e}", -1.5, "-1.5e+00"},
		{"{e:.2}", 1234.567, "1.23e+03"},
		{"{e:.0}", 1234.567, "1e+03"},
		{"{e:.1}", 9.99, "1.0e+01"},
		{"{e:.3}", 2.0, "2.000e+00"},
	} {
		out, err := brace.Format(tc.template, tc.arg)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out, "template %q arg %v", tc.template, tc.arg)
	}
}

func TestFormatFloat32Scientific(t *testing.T) {
	t.Parallel()
	out, err := brace.Format("{e}", float32(0.1))
	require.NoError(t, err)
	assert.Equal(t, "1e-01", out)
}

func TestFormatFloatFixed(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		template string
		arg      float64
		want     string
	}{
		{"{d}", 63, "63"},
		{"{d}", 1234.567, "1234.567"},
		{"{d}", 0.05, "0.05"},
		{"{d}", 0, "0"},
		{"{d:.2}", 1234.567, "1234.57"},
		{"{d:.2}", 0.005, "0.01"}, // half away from zero
		{"{d:.1}", 9.99, "10.0"},
		{"{d:.0}", 0.6, "1"},
		{"{d:.2}", 0, "0.00"},
		{"{d:.3}", -2.5, "-2.500"},
	} {
		out, err := brace.Format(tc.template, tc.arg)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out, "template %q arg %v", tc.template, tc.arg)
	}
}

func TestFormatFloatSpecials(t *testing.T) {
	t.Parallel()
	out, err := brace.Format("{d}", math.NaN())
	require.NoError(t, err)
	assert.Equal(t, "nan", out)

	out, err = brace.Format("{e}", math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, "inf", out)

	out, err = brace.Format("{d}", math.Inf(-1))
	require.NoError(t, err)
	assert.Equal(t, "-inf", out)
}

func TestFormatFloatRejectsUnknownVerb(t *testing.T) {
	t.Parallel()
	_, err := brace.Format("{x}", 1.5)
	assert.ErrorIs(t, err, brace.ErrUnsupportedVerb)
}

// --- Memory sizes ---

func TestFormatMemorySize(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		template string
		arg      any
		want     string
	}{
		{"{Bi}", 0, "0B"},
		{"{Bi}", 1023, "1023B"}, // just under the step stays in bytes
		{"{Bi}", 1024, "1KiB"},  // exactly the step switches suffix
		{"{Bi}", 1536, "1.5KiB"},
		{"{Bi}", 66060288, "63MiB"},
		{"{B}", 999, "999B"},
		{"{B}", 1000, "1kB"},
		{"{B}", 2500.0, "2.5kB"},
		{"{Bi}", -1024, "-1KiB"},
	} {
		out, err := brace.Format(tc.template, tc.arg)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out, "template %q arg %v", tc.template, tc.arg)
	}
}

func TestFormatMemorySizePrecision(t *testing.T) {
	t.Parallel()
	out, err := brace.Format("{Bi:.2}", 1536)
	require.NoError(t, err)
	assert.Equal(t, "1.50KiB", out)
}
