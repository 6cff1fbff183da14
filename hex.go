package brace

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

func appendHex(dst, src []byte, upper bool) []byte {
	table := hexLower
	if upper {
		table = hexUpper
	}
	for _, b := range src {
		dst = append(dst, table[b>>4], table[b&0x0f])
	}
	return dst
}

// EncodeHex returns src as lowercase hex digits, two per byte, with no
// separators.
func EncodeHex(src []byte) string {
	return string(appendHex(make([]byte, 0, len(src)*2), src, false))
}

// DecodeHex decodes hex digits from src into dst and returns the number of
// bytes written. Both digit cases are accepted. src must have even length
// ([ErrInvalidLength]) and contain only hex digits ([ErrInvalidCharacter]);
// dst must hold len(src)/2 bytes ([ErrNoSpace]).
func DecodeHex(dst, src []byte) (int, error) {
	if len(src)%2 != 0 {
		return 0, ErrInvalidLength
	}
	if len(dst) < len(src)/2 {
		return 0, ErrNoSpace
	}
	for i := 0; i < len(src); i += 2 {
		hi, ok := hexValue(src[i])
		if !ok {
			return 0, ErrInvalidCharacter
		}
		lo, ok := hexValue(src[i+1])
		if !ok {
			return 0, ErrInvalidCharacter
		}
		dst[i/2] = hi<<4 | lo
	}
	return len(src) / 2, nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// IsSpace reports whether c is an ASCII whitespace byte: space, tab,
// newline, carriage return, vertical tab, or form feed.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Trim cuts ASCII whitespace from both ends of s.
func Trim(s string) string {
	start := 0
	for start < len(s) && IsSpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && IsSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}
