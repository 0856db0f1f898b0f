package patchdiff

// Child is an addressable child of a compound value
type Child struct {
	Key   Key
	Value Value
}

// Children lists the children of a compound value in order. Sequence
// elements are keyed by position, mapping members by name. ok is false for
// scalars, which have no children. an empty compound returns ok == true
func (v Value) Children() (children []Child, ok bool) {
	switch v.kind {
	case KindSequence:
		children = make([]Child, len(v.items))
		for i, it := range v.items {
			children[i] = Child{Key: IndexKey(i), Value: it}
		}
		return children, true
	case KindMapping:
		children = make([]Child, len(v.members))
		for i, m := range v.members {
			children[i] = Child{Key: NameKey(m.Key), Value: m.Value}
		}
		return children, true
	}
	return nil, false
}
