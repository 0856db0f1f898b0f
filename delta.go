package patchdiff

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OpType names the operation of a patch item
type OpType string

const (
	// OpAdd inserts a value into a sequence or mapping
	OpAdd = OpType("add")
	// OpRemove removes the value at a path
	OpRemove = OpType("remove")
	// OpReplace swaps the value at a path for a new one
	OpReplace = OpType("replace")
	// OpMove is a remove from one path and an add to another. Diff never
	// creates moves, they're only here for decoding
	OpMove = OpType("move")
	// OpCopy adds a copy of the value at one path to another. never created
	// by Diff
	OpCopy = OpType("copy")
	// OpTest asserts the value at a path. never created by Diff
	OpTest = OpType("test")
)

// Operation is a single edit in a patch
type Operation struct {
	// the type of change
	Op OpType
	// Path is a JSON pointer to where the operation applies, RFC 6901:
	// https://tools.ietf.org/html/rfc6901
	Path string
	// From is the source pointer of move & copy operations
	From string
	// The value to add, replace or test with
	Value Value
}

// hasValue is true for operation types that carry a value
func (op OpType) hasValue() bool {
	return op == OpAdd || op == OpReplace || op == OpTest
}

// hasFrom is true for operation types that carry a source path
func (op OpType) hasFrom() bool {
	return op == OpMove || op == OpCopy
}

// MarshalJSON implements a custom JSON Marshaller, writing the RFC 6902
// object form. value is always present on operations that take one, even
// when it's null
func (o Operation) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteString(`{"op":`)
	if err := writeJSONString(buf, string(o.Op)); err != nil {
		return nil, err
	}
	if o.Op.hasFrom() {
		buf.WriteString(`,"from":`)
		if err := writeJSONString(buf, o.From); err != nil {
			return nil, err
		}
	}
	buf.WriteString(`,"path":`)
	if err := writeJSONString(buf, o.Path); err != nil {
		return nil, err
	}
	if o.Op.hasValue() {
		buf.WriteString(`,"value":`)
		if err := o.Value.writeJSON(buf); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the RFC 6902 object form
func (o *Operation) UnmarshalJSON(data []byte) error {
	var raw struct {
		Op    OpType          `json:"op"`
		Path  *string         `json:"path"`
		From  *string         `json:"from"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Op {
	case OpAdd, OpRemove, OpReplace, OpMove, OpCopy, OpTest:
	default:
		return fmt.Errorf("unknown operation %q", raw.Op)
	}
	if raw.Path == nil {
		return fmt.Errorf("%s operation is missing a path", raw.Op)
	}

	op := Operation{Op: raw.Op, Path: *raw.Path}
	if raw.Op.hasFrom() {
		if raw.From == nil {
			return fmt.Errorf("%s operation is missing a from path", raw.Op)
		}
		op.From = *raw.From
	}
	if raw.Op.hasValue() {
		if raw.Value == nil {
			return fmt.Errorf("%s operation is missing a value", raw.Op)
		}
		v, err := ParseJSON(raw.Value)
		if err != nil {
			return err
		}
		op.Value = v
	}

	*o = op
	return nil
}
