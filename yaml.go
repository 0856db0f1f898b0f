package patchdiff

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
	"github.com/tidwall/gjson"
)

// ParseYAML decodes the first document of a YAML stream into a Value.
// Mapping members keep the order they appear in the document, and numbers
// keep their exact text whenever it's also a valid JSON number. Numbers
// written in YAML-only forms (0x1f, 1_000, .5) are normalized. An empty
// document is null
func ParseYAML(data []byte) (Value, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return Value{}, fmt.Errorf("decoding yaml: %w", err)
	}
	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return Null(), nil
	}

	c := &yamlConverter{anchors: map[string]Value{}}
	v, err := c.value(file.Docs[0].Body)
	if err != nil {
		return Value{}, fmt.Errorf("decoding yaml: %w", err)
	}
	return v, nil
}

// yamlConverter walks a parsed YAML tree. anchors holds the values of
// anchors that have been completely converted
type yamlConverter struct {
	anchors map[string]Value
}

func (c *yamlConverter) value(node ast.Node) (Value, error) {
	switch n := node.(type) {
	case nil:
		return Null(), nil
	case *ast.NullNode:
		return Null(), nil
	case *ast.BoolNode:
		return Bool(n.Value), nil
	case *ast.IntegerNode:
		if isJSONNumber(n.Token.Value) {
			return Number(n.Token.Value), nil
		}
		return FromInterface(n.Value)
	case *ast.FloatNode:
		if isJSONNumber(n.Token.Value) {
			return Number(n.Token.Value), nil
		}
		return floatValue(n.Value)
	case *ast.StringNode:
		// plain scalars the yaml tokenizer can't fit in 64 bits, or that
		// use exponents without a fraction, are still numbers
		if n.Token.Type == token.StringType && isJSONNumber(n.Value) {
			return Number(n.Value), nil
		}
		return String(n.Value), nil
	case *ast.LiteralNode:
		if n.Value == nil {
			return String(""), nil
		}
		return String(n.Value.Value), nil
	case *ast.InfinityNode, *ast.NanNode:
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, node.GetToken().Value)
	case *ast.SequenceNode:
		items := make([]Value, len(n.Values))
		for i, el := range n.Values {
			item, err := c.value(el)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = item
		}
		return Sequence(items...), nil
	case *ast.MappingNode:
		return c.mapping(n.Values)
	case *ast.MappingValueNode:
		return c.mapping([]*ast.MappingValueNode{n})
	case *ast.MappingKeyNode:
		return c.value(n.Value)
	case *ast.AnchorNode:
		v, err := c.value(n.Value)
		if err != nil {
			return Value{}, err
		}
		c.anchors[n.Name.GetToken().Value] = v
		return v, nil
	case *ast.AliasNode:
		name := n.Value.GetToken().Value
		v, ok := c.anchors[name]
		if !ok {
			return Value{}, fmt.Errorf("undefined or recursive alias %q", name)
		}
		return v, nil
	case *ast.TagNode:
		return c.tagged(n)
	}
	return Value{}, fmt.Errorf("%w: yaml %s node", ErrUnsupportedType, node.Type())
}

func (c *yamlConverter) tagged(n *ast.TagNode) (Value, error) {
	switch token.ReservedTagKeyword(n.Start.Value) {
	case token.StringTag:
		if s, ok := n.Value.(*ast.StringNode); ok {
			return String(s.Value), nil
		}
		if n.Value == nil {
			return String(""), nil
		}
		return String(n.Value.GetToken().Value), nil
	case token.NullTag:
		return Null(), nil
	case token.IntegerTag, token.FloatTag:
		v, err := c.value(n.Value)
		if err != nil {
			return Value{}, err
		}
		if v.kind == KindString && isJSONNumber(v.text) {
			return Number(v.text), nil
		}
		return v, nil
	}
	// other tags don't change the document model
	return c.value(n.Value)
}

func (c *yamlConverter) mapping(values []*ast.MappingValueNode) (Value, error) {
	keys := make([]string, len(values))
	explicit := map[string]bool{}
	for i, mv := range values {
		if mv.Key.IsMergeKey() {
			continue
		}
		k, err := c.key(mv.Key)
		if err != nil {
			return Value{}, err
		}
		keys[i] = k
		explicit[k] = true
	}

	var members []Member
	merged := map[string]bool{}
	for i, mv := range values {
		if !mv.Key.IsMergeKey() {
			v, err := c.value(mv.Value)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", keys[i], err)
			}
			members = append(members, Member{Key: keys[i], Value: v})
			continue
		}

		// "<<" merges the members of other mappings, explicit keys win
		src, err := c.value(mv.Value)
		if err != nil {
			return Value{}, fmt.Errorf("merge: %w", err)
		}
		sources := []Value{src}
		if src.kind == KindSequence {
			sources = src.items
		}
		for _, s := range sources {
			if s.kind != KindMapping {
				return Value{}, fmt.Errorf("%w: merge of a %s", ErrUnsupportedType, s.kind)
			}
			for _, m := range s.members {
				if explicit[m.Key] || merged[m.Key] {
					continue
				}
				merged[m.Key] = true
				members = append(members, m)
			}
		}
	}
	return Mapping(members...), nil
}

// key renders a scalar mapping key as a member name
func (c *yamlConverter) key(node ast.MapKeyNode) (string, error) {
	v, err := c.value(node)
	if err != nil {
		return "", err
	}
	switch v.kind {
	case KindString, KindNumber:
		return v.text, nil
	case KindBool:
		if v.b {
			return "true", nil
		}
		return "false", nil
	case KindNull:
		return "null", nil
	}
	return "", fmt.Errorf("%w: %s mapping key", ErrUnsupportedType, v.kind)
}

// isJSONNumber reports whether s is exactly a JSON number token
func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return gjson.Valid(s)
}
