package brace

import (
	"fmt"
	"io"
	"reflect"
)

// dispatch renders one argument. The order is fixed: the address verb wins
// over everything, a Renderer implementation wins over built-in shapes, and
// only then does the value's own type pick a renderer. The depth budget is
// consumed by struct and union recursion only.
func dispatch(w io.Writer, v any, verb string, spec Spec, depth int) error {
	if verb == "*" {
		return dispatchAddress(w, v)
	}
	if r, ok := v.(Renderer); ok {
		return r.Render(w, verb, spec)
	}

	switch x := v.(type) {
	case nil:
		return writeLiteral(w, "null", verb, spec)
	case bool:
		return writeBool(w, x, verb, spec)
	case string:
		return writeText(w, x, verb, spec)
	case []byte:
		return writeText(w, string(x), verb, spec)
	case int:
		return writeSigned(w, int64(x), verb, spec)
	case int8:
		return writeSigned(w, int64(x), verb, spec)
	case int16:
		return writeSigned(w, int64(x), verb, spec)
	case int32:
		return writeSigned(w, int64(x), verb, spec)
	case int64:
		return writeSigned(w, x, verb, spec)
	case uint:
		return writeUnsigned(w, uint64(x), verb, spec)
	case uint8:
		return writeUnsigned(w, uint64(x), verb, spec)
	case uint16:
		return writeUnsigned(w, uint64(x), verb, spec)
	case uint32:
		return writeUnsigned(w, uint64(x), verb, spec)
	case uint64:
		return writeUnsigned(w, x, verb, spec)
	case uintptr:
		return writeUnsigned(w, uint64(x), verb, spec)
	case float32:
		return writeFloat(w, float64(x), 32, verb, spec)
	case float64:
		return writeFloat(w, x, 64, verb, spec)
	case reflect.Type:
		return writePadded(w, x.String(), spec)
	}

	if err, ok := v.(error); ok {
		switch verb {
		case "", "any", "s":
			_, werr := io.WriteString(w, "error."+err.Error())
			return werr
		}
		return fmt.Errorf("%w: %q for error", ErrUnsupportedVerb, verb)
	}
	if e, ok := v.(Variant); ok {
		return writeVariant(w, v, e, verb, spec)
	}
	if u, ok := v.(Union); ok {
		return writeUnion(w, v, u, verb, spec, depth)
	}
	return dispatchReflect(w, reflect.ValueOf(v), verb, spec, depth)
}

// dispatchReflect handles named and composite types the exact-type switch in
// dispatch cannot see.
func dispatchReflect(w io.Writer, rv reflect.Value, verb string, spec Spec, depth int) error {
	switch rv.Kind() {
	case reflect.Bool:
		return writeBool(w, rv.Bool(), verb, spec)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return writeSigned(w, rv.Int(), verb, spec)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return writeUnsigned(w, rv.Uint(), verb, spec)
	case reflect.Float32:
		return writeFloat(w, rv.Float(), 32, verb, spec)
	case reflect.Float64:
		return writeFloat(w, rv.Float(), 64, verb, spec)
	case reflect.String:
		return writeText(w, rv.String(), verb, spec)
	case reflect.Pointer:
		if rv.IsNil() {
			return writeLiteral(w, "null", verb, spec)
		}
		return dispatch(w, rv.Elem().Interface(), verb, spec, depth)
	case reflect.Interface:
		if rv.IsNil() {
			return writeLiteral(w, "null", verb, spec)
		}
		return dispatch(w, rv.Elem().Interface(), verb, spec, depth)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return writeText(w, string(rv.Bytes()), verb, spec)
		}
		return writeSeq(w, rv, verb, spec, depth)
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return writeText(w, string(b), verb, spec)
		}
		return writeSeq(w, rv, verb, spec, depth)
	case reflect.Struct:
		return writeStruct(w, rv, verb, spec, depth)
	case reflect.Chan, reflect.Func, reflect.Map, reflect.UnsafePointer:
		return writeRef(w, rv)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
}

// dispatchAddress handles the {*} verb: the argument's address instead of
// its content. Only pointer-shaped values carry one.
func dispatchAddress(w io.Writer, v any) error {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice, reflect.UnsafePointer:
		return writeRef(w, rv)
	}
	return fmt.Errorf("%w: %q needs a reference, got %T", ErrUnsupportedVerb, "*", v)
}

func writeBool(w io.Writer, b bool, verb string, spec Spec) error {
	s := "false"
	if b {
		s = "true"
	}
	return writeLiteral(w, s, verb, spec)
}

// writeLiteral routes the fixed boolean/null texts through the padding
// engine.
func writeLiteral(w io.Writer, s, verb string, spec Spec) error {
	switch verb {
	case "", "any", "s":
		return writePadded(w, s, spec)
	}
	return fmt.Errorf("%w: %q for %s", ErrUnsupportedVerb, verb, s)
}

func writeText(w io.Writer, s, verb string, spec Spec) error {
	switch verb {
	case "", "any", "s":
		return writePadded(w, s, spec)
	case "x":
		_, err := w.Write(appendHex(nil, []byte(s), false))
		return err
	case "X":
		_, err := w.Write(appendHex(nil, []byte(s), true))
		return err
	}
	return fmt.Errorf("%w: %q for text", ErrUnsupportedVerb, verb)
}

func writeVariant(w io.Writer, v any, e Variant, verb string, spec Spec) error {
	name := typeName(reflect.TypeOf(v))
	if tag, ok := e.VariantName(); ok {
		_, err := io.WriteString(w, name+"."+tag)
		return err
	}
	// Open enumeration: the underlying integer, honoring numeric verbs.
	if _, err := io.WriteString(w, name+"("); err != nil {
		return err
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if err := writeSigned(w, rv.Int(), verb, spec); err != nil {
			return err
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if err := writeUnsigned(w, rv.Uint(), verb, spec); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s is not integer-backed", ErrUnsupportedType, rv.Type())
	}
	_, err := io.WriteString(w, ")")
	return err
}

func writeUnion(w io.Writer, v any, u Union, verb string, spec Spec, depth int) error {
	name := typeName(reflect.TypeOf(v))
	tag, payload := u.UnionVariant()
	if tag == "" {
		// No discriminant, nothing to introspect.
		return writeRef(w, reflect.ValueOf(v))
	}
	if depth <= 0 {
		_, err := io.WriteString(w, name+"{ ... }")
		return err
	}
	if _, err := io.WriteString(w, name+"{ ."+tag+" = "); err != nil {
		return err
	}
	if err := dispatch(w, payload, verb, spec, depth-1); err != nil {
		return err
	}
	_, err := io.WriteString(w, " }")
	return err
}

func writeStruct(w io.Writer, rv reflect.Value, verb string, spec Spec, depth int) error {
	name := typeName(rv.Type())
	if depth <= 0 {
		_, err := io.WriteString(w, name+"{ ... }")
		return err
	}
	if _, err := io.WriteString(w, name+"{"); err != nil {
		return err
	}
	t := rv.Type()
	n := 0
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		sep := ", ."
		if n == 0 {
			sep = " ."
		}
		if _, err := io.WriteString(w, sep+f.Name+" = "); err != nil {
			return err
		}
		if err := dispatch(w, rv.Field(i).Interface(), verb, spec, depth-1); err != nil {
			return err
		}
		n++
	}
	_, err := io.WriteString(w, " }")
	return err
}

func writeSeq(w io.Writer, rv reflect.Value, verb string, spec Spec, depth int) error {
	if rv.Len() == 0 {
		_, err := io.WriteString(w, "{ }")
		return err
	}
	if _, err := io.WriteString(w, "{ "); err != nil {
		return err
	}
	for i := range rv.Len() {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		// The full spec applies to each element's own text; width is never
		// divided across elements.
		if err := dispatch(w, rv.Index(i).Interface(), verb, spec, depth); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, " }")
	return err
}

// writeRef renders a pointer-shaped value as Type@hexaddress.
func writeRef(w io.Writer, rv reflect.Value) error {
	t := rv.Type()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var addr uint64
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice, reflect.UnsafePointer:
		addr = uint64(rv.Pointer())
	}
	if _, err := io.WriteString(w, typeName(t)+"@"); err != nil {
		return err
	}
	return renderInt(w, addr, false, false, 16, false, Spec{Fill: ' '})
}

func typeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
