package patchdiff

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is one step of an address into a document: an index into a sequence
// or the name of a mapping member
type Key struct {
	index   int
	name    string
	isIndex bool
}

// IndexKey addresses the i-th element of a sequence
func IndexKey(i int) Key { return Key{index: i, isIndex: true} }

// NameKey addresses a mapping member by name
func NameKey(name string) Key { return Key{name: name} }

// IsIndex is true for sequence positions
func (k Key) IsIndex() bool { return k.isIndex }

// Index returns the sequence position of an index key
func (k Key) Index() int { return k.index }

// Name returns the member name of a name key
func (k Key) Name() string { return k.name }

// String renders k as an escaped JSON pointer segment
func (k Key) String() string {
	return string(k.appendSegment(nil, 0))
}

// appendSegment writes the pointer segment for k to buf. shift is subtracted
// from sequence positions
func (k Key) appendSegment(buf []byte, shift int) []byte {
	if k.isIndex {
		return strconv.AppendInt(buf, int64(k.index-shift), 10)
	}
	return appendEscaped(buf, k.name)
}

func appendEscaped(buf []byte, name string) []byte {
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '~':
			buf = append(buf, '~', '0')
		case '/':
			buf = append(buf, '~', '1')
		default:
			buf = append(buf, name[i])
		}
	}
	return buf
}

var unescaper = strings.NewReplacer("~1", "/", "~0", "~")

// EscapeKey escapes a mapping key for use as a JSON pointer segment.
// "~" becomes "~0" and "/" becomes "~1"
func EscapeKey(key string) string {
	return string(appendEscaped(make([]byte, 0, len(key)), key))
}

// UnescapeKey reverses EscapeKey
func UnescapeKey(segment string) string {
	return unescaper.Replace(segment)
}

// ParsePointer splits a JSON pointer into its unescaped reference tokens.
// The empty pointer "" refers to the whole document & has no tokens
func ParsePointer(pointer string) ([]string, error) {
	if pointer == "" {
		return nil, nil
	}
	if pointer[0] != '/' {
		return nil, fmt.Errorf("%w: %q must begin with '/'", ErrInvalidPointer, pointer)
	}
	segments := strings.Split(pointer[1:], "/")
	for i, seg := range segments {
		for j := 0; j < len(seg); j++ {
			if seg[j] != '~' {
				continue
			}
			if j+1 == len(seg) || (seg[j+1] != '0' && seg[j+1] != '1') {
				return nil, fmt.Errorf("%w: bad escape in %q", ErrInvalidPointer, pointer)
			}
			j++
		}
		segments[i] = UnescapeKey(seg)
	}
	return segments, nil
}

// JoinPointer builds a JSON pointer from unescaped reference tokens
func JoinPointer(tokens ...string) string {
	var buf []byte
	for _, t := range tokens {
		buf = append(buf, '/')
		buf = appendEscaped(buf, t)
	}
	return string(buf)
}

// Get resolves a JSON pointer against v
func (v Value) Get(pointer string) (Value, error) {
	tokens, err := ParsePointer(pointer)
	if err != nil {
		return Value{}, err
	}

	cur := v
	for _, tok := range tokens {
		switch cur.kind {
		case KindMapping:
			next, ok := cur.Lookup(tok)
			if !ok {
				return Value{}, fmt.Errorf("%w: %q has no member %q", ErrPathNotFound, pointer, tok)
			}
			cur = next
		case KindSequence:
			i, ok := parseIndex(tok)
			if !ok || i >= len(cur.items) {
				return Value{}, fmt.Errorf("%w: %q index %q out of range", ErrPathNotFound, pointer, tok)
			}
			cur = cur.items[i]
		default:
			return Value{}, fmt.Errorf("%w: %q traverses a %s", ErrPathNotFound, pointer, cur.kind)
		}
	}
	return cur, nil
}

// parseIndex accepts only the RFC 6901 array index form: "0" or digits
// without a leading zero
func parseIndex(tok string) (int, bool) {
	if tok == "" || (len(tok) > 1 && tok[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return i, true
}
