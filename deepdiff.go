package patchdiff

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidJSON is returned when a document isn't well-formed JSON
	ErrInvalidJSON = errors.New("invalid json")
	// ErrUnsupportedType is returned when a go value has no document
	// representation, eg: channels, funcs, NaN
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrInvalidPointer is returned for malformed JSON pointers
	ErrInvalidPointer = errors.New("invalid json pointer")
	// ErrPathNotFound is returned when a JSON pointer doesn't resolve
	ErrPathNotFound = errors.New("path not found")
	// ErrApply wraps errors from applying a patch to a document
	ErrApply = errors.New("applying patch")
)

// DiffConfig are any possible configuration parameters for calculating diffs
type DiffConfig struct {
	// If true mapping members on both sides are sorted by key before diffing,
	// which makes the order of the edit script independent of the order
	// members were presented in
	SortKeys bool
	// Provide a non-nil stats pointer & diff will populate it with data from
	// the diff process
	Stats *Stats
	// Logf receives debug output. When nil, debug output is written to stderr
	// if the PATCHDIFF_DEBUG environment variable is true
	Logf func(format string, args ...interface{})
}

// DiffOption is a function that adjust a config, zero or more DiffOptions
// can be passed to the Diff function
type DiffOption func(cfg *DiffConfig)

// OptionSortKeys canonicalizes mapping member order before diffing
func OptionSortKeys() DiffOption {
	return func(cfg *DiffConfig) {
		cfg.SortKeys = true
	}
}

// OptionSetStats will set the passed-in stats pointer when Diff is called
func OptionSetStats(st *Stats) DiffOption {
	return func(cfg *DiffConfig) {
		cfg.Stats = st
	}
}

// OptionDebugLogf routes debug output to logf
func OptionDebugLogf(logf func(format string, args ...interface{})) DiffOption {
	return func(cfg *DiffConfig) {
		cfg.Logf = logf
	}
}

// Diff computes a patch that turns left into right. Diff never fails, and
// diffing a value against itself always gives an empty patch
func Diff(left, right Value, opts ...DiffOption) Patch {
	cfg := &DiffConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.SortKeys {
		left, right = left.SortKeys(), right.SortKeys()
	}
	if cfg.Stats != nil {
		cfg.Stats.Left, cfg.Stats.LeftWeight = nodeStats(left)
		cfg.Stats.Right, cfg.Stats.RightWeight = nodeStats(right)
	}

	c := newDiffContext(cfg)
	compare(left, right, c)
	cfg.debugf("diff complete: %d operations", len(c.patch))
	return c.patch
}

// DiffInterface diffs two documents made of generic go types, see
// FromInterface for supported types
func DiffInterface(left, right interface{}, opts ...DiffOption) (Patch, error) {
	l, err := FromInterface(left)
	if err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	r, err := FromInterface(right)
	if err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}
	return Diff(l, r, opts...), nil
}

// DiffJSON diffs two JSON documents
func DiffJSON(left, right []byte, opts ...DiffOption) (Patch, error) {
	l, err := ParseJSON(left)
	if err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	r, err := ParseJSON(right)
	if err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}
	return Diff(l, r, opts...), nil
}

// DiffYAML diffs two YAML documents
func DiffYAML(left, right []byte, opts ...DiffOption) (Patch, error) {
	l, err := ParseYAML(left)
	if err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	r, err := ParseYAML(right)
	if err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}
	return Diff(l, r, opts...), nil
}

// compare emits the operations that turn l into r at the context's current
// path:
//
// 1. equal scalars, or equal compounds, need nothing. comparing whole
//    compounds first prunes unchanged subtrees without descending into them
// 2. unequal scalars, a scalar vs. a compound, or a sequence vs. a mapping
//    are replaced outright. compounds of different shapes are never merged
// 3. compounds of the same shape are compared child by child:
//    a. children present on both sides are compared recursively, in right
//       side order. nested operations land in the script at this point
//    b. children only on the right are added, in right side order
//    c. children only on the left are removed, in left side order. Each
//       sequence removal shrinks the list, so indices are shifted down by
//       the number of elements removed before them
func compare(l, r Value, c *diffContext) {
	lch, lok := l.Children()
	rch, rok := r.Children()

	switch {
	case !lok && !rok:
		if !Equal(l, r) {
			c.modified(r)
		}
		return
	case lok && rok && Equal(l, r):
		return
	case lok != rok || l.kind != r.kind:
		c.modified(r)
		return
	}

	lIdx := make(map[Key]int, len(lch))
	for i, ch := range lch {
		lIdx[ch.Key] = i
	}
	rIdx := make(map[Key]int, len(rch))
	for i, ch := range rch {
		rIdx[ch.Key] = i
	}

	for _, rc := range rch {
		i, ok := lIdx[rc.Key]
		if !ok {
			continue
		}
		lv, rv := lch[i].Value, rc.Value
		c.descend(rc.Key, func() {
			compare(lv, rv, c)
		})
	}

	for _, rc := range rch {
		if _, ok := lIdx[rc.Key]; !ok {
			c.added(rc.Key, rc.Value)
		}
	}

	for _, lc := range lch {
		if _, ok := rIdx[lc.Key]; !ok {
			c.removed(lc.Key)
		}
	}
}
