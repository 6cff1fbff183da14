package brace

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// maxDirective caps widths, precisions, and explicit indexes while digits
// accumulate, so a hostile template cannot overflow an int.
const maxDirective = 1 << 20

// placeholder is one resolved {...} occurrence: the argument it selects, the
// raw verb token, and the parsed directive.
type placeholder struct {
	arg  int
	verb string
	spec Spec
}

// argUsage tracks which argument positions a template references. It lives
// for a single scan; the bitset is read once when the scan completes.
type argUsage struct {
	next  int
	used  uint32
	total int
}

// scan walks template once, left to right, calling lit for each literal span
// and ph for each placeholder, in template order. It enforces the whole
// placeholder grammar plus the argument-usage rules: explicit and implicit
// indexes must stay below the argument count, and when the scan completes
// every argument must have been referenced at least once.
func scan(template string, numArgs int, lit func(string) error, ph func(placeholder) error) error {
	if numArgs > MaxArgs {
		return fmt.Errorf("%w: %d arguments, maximum is %d", ErrTooManyArguments, numArgs, MaxArgs)
	}
	usage := argUsage{total: numArgs}
	start := 0
	i := 0
	for i < len(template) {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				// Escaped brace: flush the span including one '{'.
				if err := lit(template[start : i+1]); err != nil {
					return err
				}
				i += 2
				start = i
				continue
			}
			if i > start {
				if err := lit(template[start:i]); err != nil {
					return err
				}
			}
			next, p, err := parsePlaceholder(template, i+1, &usage)
			if err != nil {
				return err
			}
			if err := ph(p); err != nil {
				return err
			}
			i = next
			start = i
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				if err := lit(template[start : i+1]); err != nil {
					return err
				}
				i += 2
				start = i
				continue
			}
			return fmt.Errorf("%w: unmatched '}' at offset %d", ErrInvalidTemplate, i)
		default:
			i++
		}
	}
	if i > start {
		if err := lit(template[start:i]); err != nil {
			return err
		}
	}
	for a := range numArgs {
		if usage.used&(1<<a) == 0 {
			return fmt.Errorf("%w: argument %d is never referenced", ErrUnusedArgument, a)
		}
	}
	return nil
}

// parsePlaceholder consumes one placeholder body starting just past its '{'
// and returns the offset past the closing '}'.
func parsePlaceholder(template string, i int, usage *argUsage) (int, placeholder, error) {
	var p placeholder
	for {
		p = placeholder{arg: -1, spec: Spec{Fill: ' '}}

		// Positional: leading digits select an explicit argument index.
		idx := 0
		hasIdx := false
		for i < len(template) && template[i] >= '0' && template[i] <= '9' {
			idx = idx*10 + int(template[i]-'0')
			if idx > maxDirective {
				return 0, p, fmt.Errorf("%w: {%d}", ErrArgOutOfRange, idx)
			}
			hasIdx = true
			i++
		}

		// A second '{' abandons whatever was scanned and starts over.
		if i < len(template) && template[i] == '{' {
			i++
			continue
		}

		// Specifier token runs until the directive or the closing brace.
		vstart := i
		for i < len(template) && template[i] != ':' && template[i] != '}' {
			i++
		}
		p.verb = template[vstart:i]
		if i >= len(template) {
			return 0, p, fmt.Errorf("%w: unclosed placeholder", ErrInvalidTemplate)
		}

		if template[i] == ':' {
			i++
			var err error
			i, err = parseDirective(template, i, &p.spec)
			if err != nil {
				return 0, p, err
			}
		}
		if i >= len(template) || template[i] != '}' {
			return 0, p, fmt.Errorf("%w: placeholder is not closed by '}'", ErrInvalidTemplate)
		}
		i++

		if hasIdx {
			if idx >= usage.total {
				return 0, p, fmt.Errorf("%w: {%d} with %d argument(s)", ErrArgOutOfRange, idx, usage.total)
			}
			p.arg = idx
		} else {
			if usage.next >= usage.total {
				return 0, p, fmt.Errorf("%w: implicit {%d} with %d argument(s)", ErrArgOutOfRange, usage.next, usage.total)
			}
			p.arg = usage.next
			usage.next++
		}
		usage.used |= 1 << p.arg
		return i, p, nil
	}
}

// parseDirective consumes the segment after ':'. An alignment marker in the
// first or second rune means the segment opens with [fill] align; this is
// the lookahead that keeps a numeric width from being eaten as a fill.
func parseDirective(template string, i int, spec *Spec) (int, error) {
	if i < len(template) {
		r1, n1 := utf8.DecodeRuneInString(template[i:])
		if a, ok := alignOf(r1); ok {
			spec.Align = a
			i += n1
		} else if i+n1 < len(template) {
			r2, n2 := utf8.DecodeRuneInString(template[i+n1:])
			if a, ok := alignOf(r2); ok {
				spec.Fill = r1
				spec.Align = a
				i += n1 + n2
			}
		}
	}
	for i < len(template) && template[i] >= '0' && template[i] <= '9' {
		spec.Width = spec.Width*10 + int(template[i]-'0')
		if spec.Width > maxDirective {
			return 0, fmt.Errorf("%w: width too large", ErrInvalidTemplate)
		}
		spec.HasWidth = true
		i++
	}
	if i < len(template) && template[i] == '.' {
		i++
		spec.HasPrecision = true
		for i < len(template) && template[i] >= '0' && template[i] <= '9' {
			spec.Precision = spec.Precision*10 + int(template[i]-'0')
			if spec.Precision > maxDirective {
				return 0, fmt.Errorf("%w: precision too large", ErrInvalidTemplate)
			}
			i++
		}
	}
	return i, nil
}

func alignOf(r rune) (Alignment, bool) {
	switch r {
	case '<':
		return AlignLeft, true
	case '^':
		return AlignCenter, true
	case '>':
		return AlignRight, true
	}
	return AlignLeft, false
}

// Template is a pre-validated template. Compiling once and rendering many
// times skips re-validation and reports template violations before any
// output exists.
type Template struct {
	src     string
	segs    []segment
	numArgs int
}

type segment struct {
	lit  string
	ph   placeholder
	isPH bool
}

// Compile validates template against an argument count and returns a
// reusable Template. All grammar and argument-usage violations surface here,
// before anything is rendered.
func Compile(template string, numArgs int) (*Template, error) {
	t := &Template{src: template, numArgs: numArgs}
	err := scan(template, numArgs,
		func(lit string) error {
			t.segs = append(t.segs, segment{lit: lit})
			return nil
		},
		func(p placeholder) error {
			t.segs = append(t.segs, segment{ph: p, isPH: true})
			return nil
		})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// MustCompile is Compile but panics on error. It is intended for templates
// known at program start, mirroring regexp.MustCompile.
func MustCompile(template string, numArgs int) *Template {
	t, err := Compile(template, numArgs)
	if err != nil {
		panic(fmt.Sprintf("brace: MustCompile(%q): %v", template, err))
	}
	return t
}

// Render writes the compiled template against args to w.
func (t *Template) Render(w io.Writer, args ...any) error {
	return t.RenderDepth(w, DefaultDepth, args...)
}

// RenderDepth is Render with an explicit recursion budget.
func (t *Template) RenderDepth(w io.Writer, depth int, args ...any) error {
	if len(args) != t.numArgs {
		return fmt.Errorf("%w: template compiled for %d argument(s), got %d", ErrArgCount, t.numArgs, len(args))
	}
	for _, s := range t.segs {
		if !s.isPH {
			if _, err := io.WriteString(w, s.lit); err != nil {
				return err
			}
			continue
		}
		if err := dispatch(w, args[s.ph.arg], s.ph.verb, s.ph.spec, depth); err != nil {
			return err
		}
	}
	return nil
}

// RenderString renders the compiled template into a new string.
func (t *Template) RenderString(args ...any) (string, error) {
	w := appendWriter{}
	if err := t.Render(&w, args...); err != nil {
		return "", err
	}
	return string(w.buf), nil
}

// NumArgs reports the argument count the template was compiled for.
func (t *Template) NumArgs() int { return t.numArgs }

// String returns the template source.
func (t *Template) String() string { return t.src }
