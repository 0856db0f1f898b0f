package patchdiff

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"sort"
)

// Kind defines all of the atoms in our universe, or the types of data we
// will encounter while generating a diff
type Kind uint8

const (
	// KindNull is the JSON null value. The zero Value is null
	KindNull Kind = iota
	// KindBool is a true / false value
	KindBool
	// KindNumber is a number, stored as its textual representation
	KindNumber
	// KindString is a string of text
	KindString
	// KindSequence is an ordered list of values
	KindSequence
	// KindMapping is a collection of uniquely-named values
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindSequence:
		return "Sequence"
	case KindMapping:
		return "Mapping"
	default:
		return "Unknown"
	}
}

// Value is an immutable node in a document tree. Values exclusively own
// their children and are never modified after construction
type Value struct {
	kind    Kind
	b       bool
	text    string
	items   []Value
	members []Member
	// position of each mapping key in members
	index map[string]int
}

// Member is a single named entry in a mapping
type Member struct {
	Key   string
	Value Value
}

// Null returns the null value
func Null() Value { return Value{} }

// Bool returns a boolean value
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a number value. text is kept verbatim and must be a valid
// JSON number. two numbers are only equal when their text is equal
func Number(text string) Value { return Value{kind: KindNumber, text: text} }

// String returns a string value
func String(s string) Value { return Value{kind: KindString, text: s} }

// Sequence returns an ordered list of values
func Sequence(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindSequence, items: cp}
}

// Mapping returns a mapping of the given members, in the order given.
// If a key is repeated the later value replaces the earlier one, keeping the
// position of the first occurence
func Mapping(members ...Member) Value {
	v := Value{
		kind:    KindMapping,
		members: make([]Member, 0, len(members)),
		index:   make(map[string]int, len(members)),
	}
	for _, m := range members {
		if i, ok := v.index[m.Key]; ok {
			v.members[i].Value = m.Value
			continue
		}
		v.index[m.Key] = len(v.members)
		v.members = append(v.members, m)
	}
	return v
}

// Kind returns the kind of value
func (v Value) Kind() Kind { return v.kind }

// IsScalar is true for values without children: null, bools, numbers & strings
func (v Value) IsScalar() bool { return v.kind != KindSequence && v.kind != KindMapping }

// Bool returns the value of a boolean, false for any other kind
func (v Value) Bool() bool { return v.b }

// Text returns the verbatim text of a number or string, "" for any other kind
func (v Value) Text() string { return v.text }

// Len is the number of children in a compound value, 0 for scalars
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.members)
	}
	return 0
}

// Items returns the elements of a sequence
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	cp := make([]Value, len(v.items))
	copy(cp, v.items)
	return cp
}

// Members returns the entries of a mapping in order
func (v Value) Members() []Member {
	if v.kind != KindMapping {
		return nil
	}
	cp := make([]Member, len(v.members))
	copy(cp, v.members)
	return cp
}

// Lookup gets a mapping member by name
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	i, ok := v.index[key]
	if !ok {
		return Value{}, false
	}
	return v.members[i].Value, true
}

// SortKeys returns a copy of v with the members of every mapping ordered
// lexicographically by key
func (v Value) SortKeys() Value {
	switch v.kind {
	case KindSequence:
		items := make([]Value, len(v.items))
		for i, it := range v.items {
			items[i] = it.SortKeys()
		}
		return Value{kind: KindSequence, items: items}
	case KindMapping:
		members := make([]Member, len(v.members))
		for i, m := range v.members {
			members[i] = Member{Key: m.Key, Value: m.Value.SortKeys()}
		}
		sort.Slice(members, func(i, j int) bool { return members[i].Key < members[j].Key })
		return Mapping(members...)
	}
	return v
}

// Equal reports whether two values are structurally identical. Mappings are
// equal when they hold the same key / value pairs, regardless of order
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber, KindString:
		return a.text == b.text
	case KindSequence:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(a.members) != len(b.members) {
			return false
		}
		for _, m := range a.members {
			bv, ok := b.Lookup(m.Key)
			if !ok || !Equal(m.Value, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// Equal is shorthand for Equal(v, o)
func (v Value) Equal(o Value) bool { return Equal(v, o) }

// NewHash returns a new hash interface, wrapped in a function for easy
// hash algorithm switching. default is 64-bit FNV-1a for fast, cheap,
// (non-cryptographic) hashing
var NewHash = func() hash.Hash64 {
	return fnv.New64a()
}

// Hash returns a deep hash of v, consistent with Equal: equal values always
// hash the same. mapping members are combined without regard to order
func (v Value) Hash() uint64 {
	h := NewHash()
	var buf [8]byte
	h.Write([]byte{byte(v.kind)})

	switch v.kind {
	case KindBool:
		if v.b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case KindNumber, KindString:
		h.Write([]byte(v.text))
	case KindSequence:
		for _, it := range v.items {
			binary.LittleEndian.PutUint64(buf[:], it.Hash())
			h.Write(buf[:])
		}
	case KindMapping:
		var sum uint64
		for _, m := range v.members {
			mh := NewHash()
			mh.Write([]byte(m.Key))
			binary.LittleEndian.PutUint64(buf[:], m.Value.Hash())
			mh.Write(buf[:])
			sum += mh.Sum64()
		}
		binary.LittleEndian.PutUint64(buf[:], sum)
		h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(len(v.members)))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// nodeStats counts the nodes in a tree & a byte-ish weight for the tree
func nodeStats(v Value) (nodes, weight int) {
	switch v.kind {
	case KindNull:
		return 1, len("null")
	case KindBool:
		if v.b {
			return 1, len("true")
		}
		return 1, len("false")
	case KindNumber, KindString:
		return 1, len(v.text)
	}

	nodes, weight = 1, 1
	ch, _ := v.Children()
	for _, c := range ch {
		n, w := nodeStats(c.Value)
		nodes += n
		weight += w
	}
	return nodes, weight
}
