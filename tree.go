package patchdiff

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/goccy/go-yaml"
)

// FromInterface builds a Value from the go types created by unmarshaling
// into an interface{}. Two complex types are supported:
//   map[string]interface{}
//   []interface{}
// along with yaml.MapSlice for ordered mappings, and these scalar types:
//   string, json.Number, float32/64, all int & uint types, bool, nil
// go maps carry no order, so map[string]interface{} members are sorted by key.
// yaml.MapSlice members keep the order they were decoded in
func FromInterface(v interface{}) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		return Number(x.String()), nil
	case float64:
		return floatValue(x)
	case float32:
		return floatValue(float64(x))
	case int:
		return Number(strconv.FormatInt(int64(x), 10)), nil
	case int8:
		return Number(strconv.FormatInt(int64(x), 10)), nil
	case int16:
		return Number(strconv.FormatInt(int64(x), 10)), nil
	case int32:
		return Number(strconv.FormatInt(int64(x), 10)), nil
	case int64:
		return Number(strconv.FormatInt(x, 10)), nil
	case uint:
		return Number(strconv.FormatUint(uint64(x), 10)), nil
	case uint8:
		return Number(strconv.FormatUint(uint64(x), 10)), nil
	case uint16:
		return Number(strconv.FormatUint(uint64(x), 10)), nil
	case uint32:
		return Number(strconv.FormatUint(uint64(x), 10)), nil
	case uint64:
		return Number(strconv.FormatUint(x, 10)), nil
	case []interface{}:
		items := make([]Value, len(x))
		for i, el := range x {
			item, err := FromInterface(el)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = item
		}
		return Sequence(items...), nil
	case map[string]interface{}:
		// gotta sort keys for a consistent order :(
		names := make([]string, 0, len(x))
		for name := range x {
			names = append(names, name)
		}
		sort.Strings(names)

		members := make([]Member, len(names))
		for i, name := range names {
			val, err := FromInterface(x[name])
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", name, err)
			}
			members[i] = Member{Key: name, Value: val}
		}
		return Mapping(members...), nil
	case yaml.MapSlice:
		members := make([]Member, len(x))
		for i, item := range x {
			name, ok := item.Key.(string)
			if !ok {
				name = fmt.Sprint(item.Key)
			}
			val, err := FromInterface(item.Value)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", name, err)
			}
			members[i] = Member{Key: name, Value: val}
		}
		return Mapping(members...), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

func floatValue(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: %v", ErrUnsupportedType, f)
	}
	return Number(formatFloat(f)), nil
}

// formatFloat matches the encoding/json float format: plain decimal, or
// exponent form for very large & very small magnitudes
func formatFloat(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Interface converts v back to generic go types: nil, bool, json.Number,
// string, []interface{} & map[string]interface{}. numbers are returned as
// json.Number to keep their text intact
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return json.Number(v.text)
	case KindString:
		return v.text
	case KindSequence:
		items := make([]interface{}, len(v.items))
		for i, it := range v.items {
			items[i] = it.Interface()
		}
		return items
	case KindMapping:
		m := make(map[string]interface{}, len(v.members))
		for _, mem := range v.members {
			m[mem.Key] = mem.Value.Interface()
		}
		return m
	}
	return nil
}
