package patchdiff

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// Patch is an edit script: an ordered list of operations. Each operation
// assumes every operation before it has already been applied
type Patch []Operation

// MarshalJSON writes a patch as a JSON array. A nil patch is an empty array
func (p Patch) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('[')
	for i, op := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := op.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// DecodePatch reads a patch from its JSON wire form
func DecodePatch(data []byte) (Patch, error) {
	p := Patch{}
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	return p, nil
}

// Apply applies the patch to a JSON document, returning the patched
// document. Application is delegated to github.com/evanphx/json-patch/v5,
// whose errors for missing paths, type mismatches & out of range indices
// are wrapped in ErrApply.
//
// The engine has two known gaps: it can only replace the whole document
// with an object or array, and it can't resolve pointers that pass through
// an empty mapping key, like "//1" in {"":[1,2]}. Patches touching either
// fail with ErrApply even though Value.Get resolves their paths
func (p Patch) Apply(doc []byte) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrApply, err)
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrApply, err)
	}
	return out, nil
}

// ApplyValue applies the patch to a Value, returning a new Value
func (p Patch) ApplyValue(v Value) (Value, error) {
	doc, err := v.MarshalJSON()
	if err != nil {
		return Value{}, err
	}
	out, err := p.Apply(doc)
	if err != nil {
		return Value{}, err
	}
	return ParseJSON(out)
}
