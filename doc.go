// Package brace renders placeholder templates against an ordered list of
// heterogeneous arguments.
//
// A template is plain text with {...} placeholders. Each placeholder selects
// an argument (explicitly by index, or implicitly in order), an optional verb
// that picks the rendering mode, and an optional directive controlling fill,
// alignment, width, and precision:
//
//	{ [index] [verb] [ : [fill] align ] [width] [ . precision ] }
//
// Literal braces are escaped by doubling ({{ and }}); a stray unescaped }
// is an error. Examples:
//
//	brace.Format("{} + {} = {}", 1, 2, 3)      // "1 + 2 = 3"
//	brace.Format("{2} {1} {0}", 0, 1, 2)       // "2 1 0"
//	brace.Format("{x:4}", byte(0x12))          // "  12"
//	brace.Format("{:=^10}", true)              // "===true==="
//	brace.Format("{d:.2}", 1234.567)           // "1234.57"
//	brace.Format("{Bi}", 66060288)             // "63MiB"
//
// # Verbs
//
//   - d — decimal integer (default for integers)
//   - b, o, x, X — binary, octal, lower/upper hexadecimal integer; x and X
//     also hex-dump strings and byte slices
//   - c — single character (integers in [0, 255] only)
//   - s — text (default for strings and byte slices)
//   - e, E — scientific float notation (default for floats)
//   - Bi — memory size, IEC units (KiB, MiB, ...), base 1024
//   - B — memory size, SI units (kB, MB, ...), base 1000
//   - * — the argument's address instead of its value
//   - any — explicit default rendering
//
// The d verb on a float selects fixed-point notation. A verb that does not
// apply to the argument's type is reported as [ErrUnsupportedVerb].
//
// # Interface Design
//
// The package dispatches on the argument's type. Three interfaces let types
// participate in or override that dispatch:
//
//   - [Renderer] — full custom rendering; the verb, spec, and sink are passed
//     through unchanged, and the implementation may reject verbs it does not
//     support.
//   - [Variant] — enumeration tags; recognized values render as Type.Name,
//     unrecognized ones as Type(n).
//   - [Union] — tagged unions; render as Type{ .tag = payload }.
//
// Without these, values render by shape: booleans as true/false, nil and nil
// pointers as null, non-nil pointers as their pointee, errors as
// error.<text>, structs as Type{ .Field = value, ... }, slices and arrays as
// { e0, e1, ... }, and channels, functions, and maps as Type@address.
// Recursion into structs and unions is bounded by a depth budget
// ([DefaultDepth] unless [FormatToDepth] is used); at depth zero the value
// renders as Type{ ... }.
//
// # Validation
//
// Templates are validated by the same single-pass scan everywhere: every
// placeholder must reference an existing argument, every argument must be
// referenced at least once (referencing one twice is fine), and at most
// [MaxArgs] arguments are tracked. [Compile] and [MustCompile] run the scan
// ahead of use so malformed templates are rejected before any output exists;
// the direct entry points report the same violations as errors at render
// time. The cmd/brace CLI exposes the ahead-of-use tier for go:generate and
// CI pipelines.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidTemplate] — malformed placeholder syntax
//   - [ErrArgOutOfRange] — placeholder references a missing argument
//   - [ErrUnusedArgument] — an argument is never referenced
//   - [ErrTooManyArguments] — more than [MaxArgs] arguments
//   - [ErrUnsupportedVerb] — verb does not apply to the argument
//   - [ErrUnsupportedType] — argument has no rendering at all
//   - [ErrArgCount] — compiled template rendered with the wrong arity
//   - [ErrNoSpace] — fixed buffer exhausted
//   - [ErrOverflow], [ErrInvalidCharacter], [ErrInvalidLength] — numeric and
//     hex parsing failures
//
// Template violations are detected before any output is produced. Sink
// write failures propagate verbatim and abort the rest of the invocation;
// output already written is not rolled back.
package brace
