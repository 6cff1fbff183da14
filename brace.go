package brace

import (
	"errors"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidTemplate  = errors.New("invalid template")
	ErrArgOutOfRange    = errors.New("argument index out of range")
	ErrUnusedArgument   = errors.New("unused argument")
	ErrTooManyArguments = errors.New("too many arguments")
	ErrUnsupportedVerb  = errors.New("unsupported verb")
	ErrUnsupportedType  = errors.New("unsupported argument type")
	ErrArgCount         = errors.New("wrong argument count")
	ErrNoSpace          = errors.New("no space left in buffer")
	ErrOverflow         = errors.New("integer overflow")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrInvalidLength    = errors.New("invalid length")
)

const (
	// MaxArgs is the maximum number of arguments a template may reference.
	// The argument-usage bitset is fixed at 32 bits wide.
	MaxArgs = 32

	// DefaultDepth is the recursion budget into nested structs and unions.
	// At depth zero a nested value renders as Type{ ... } and descent stops.
	DefaultDepth = 3
)

// Alignment controls where padding goes when a rendered value is narrower
// than the requested width.
type Alignment int

const (
	AlignLeft   Alignment = iota // pad after the content (default)
	AlignCenter                  // split padding, odd remainder after
	AlignRight                   // pad before the content
)

// Spec is the parsed fill/alignment/width/precision directive of one
// placeholder. The zero value means "no directive"; a zero Fill is treated
// as a space.
type Spec struct {
	Fill         rune
	Align        Alignment
	Width        int
	Precision    int
	HasWidth     bool
	HasPrecision bool
}

// Renderer lets a type take over its own rendering entirely. The verb and
// spec arrive exactly as parsed from the placeholder; implementations may
// reject verbs they do not support.
type Renderer interface {
	Render(w io.Writer, verb string, spec Spec) error
}

// Variant provides the tag name of an enumerated value. Recognized values
// render as Type.Name; unrecognized values report ok == false and render as
// Type(n) with the underlying integer.
type Variant interface {
	VariantName() (name string, ok bool)
}

// Union exposes the active variant of a tagged union as a (tag, payload)
// pair. An empty tag marks the union as non-introspectable; it renders as
// its address instead of its content.
type Union interface {
	UnionVariant() (tag string, payload any)
}

// FormatTo renders template against args and writes the result to w. A
// template violation is detected before anything reaches w; only sink write
// failures leave partial output behind.
func FormatTo(w io.Writer, template string, args ...any) error {
	return FormatToDepth(w, DefaultDepth, template, args...)
}

// FormatToDepth is FormatTo with an explicit recursion budget for nested
// structs and unions.
func FormatToDepth(w io.Writer, depth int, template string, args ...any) error {
	// Validation pass: walk the whole template with no-op callbacks so a
	// violation anywhere rejects it before any output exists.
	err := scan(template, len(args),
		func(string) error { return nil },
		func(placeholder) error { return nil })
	if err != nil {
		return err
	}
	return scan(template, len(args),
		func(lit string) error {
			_, err := io.WriteString(w, lit)
			return err
		},
		func(p placeholder) error {
			return dispatch(w, args[p.arg], p.verb, p.spec, depth)
		})
}

// Format renders template against args into a freshly allocated string.
func Format(template string, args ...any) (string, error) {
	var sb strings.Builder
	if err := FormatTo(&sb, template, args...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Append renders template against args and appends the result to dst.
func Append(dst []byte, template string, args ...any) ([]byte, error) {
	w := appendWriter{buf: dst}
	if err := FormatTo(&w, template, args...); err != nil {
		return dst, err
	}
	return w.buf, nil
}

// FormatBuffer renders template against args into buf and returns the
// written prefix. When the output exceeds len(buf) it returns [ErrNoSpace];
// buf then holds a truncated prefix.
func FormatBuffer(buf []byte, template string, args ...any) ([]byte, error) {
	w := fixedWriter{buf: buf}
	err := FormatTo(&w, template, args...)
	return buf[:w.n], err
}

// Measure renders template against args into a discarding sink and returns
// the number of bytes the output occupies.
func Measure(template string, args ...any) (int, error) {
	var w countWriter
	if err := FormatTo(&w, template, args...); err != nil {
		return 0, err
	}
	return w.n, nil
}

type appendWriter struct {
	buf []byte
}

func (w *appendWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

type fixedWriter struct {
	buf []byte
	n   int
}

func (w *fixedWriter) Write(p []byte) (int, error) {
	c := copy(w.buf[w.n:], p)
	w.n += c
	if c < len(p) {
		return c, ErrNoSpace
	}
	return c, nil
}

type countWriter struct {
	n int
}

func (w *countWriter) Write(p []byte) (int, error) {
	w.n += len(p)
	return len(p), nil
}
