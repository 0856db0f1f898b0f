package patchdiff

// diffContext is the traversal state for a single Diff call: the pointer to
// the pair of values currently being compared, the edit script so far, and
// the running count of sequence elements removed at the current level
type diffContext struct {
	cfg   *DiffConfig
	path  []byte
	patch Patch
	// shift is only non-zero while a parent emits its removals, it's
	// subtracted from each removed index to account for earlier removals
	shift int
}

func newDiffContext(cfg *DiffConfig) *diffContext {
	return &diffContext{cfg: cfg, patch: Patch{}}
}

// push appends a segment for k to the path, returning the path length to
// restore afterward
func (c *diffContext) push(k Key) (mark int) {
	mark = len(c.path)
	c.path = append(c.path, '/')
	c.path = k.appendSegment(c.path, c.shift)
	return mark
}

// pop truncates the path back to mark & resets shift, ascending one level
func (c *diffContext) pop(mark int) {
	c.path = c.path[:mark]
	c.shift = 0
}

// descend runs fn with the path extended by k, always restoring the path on
// the way out
func (c *diffContext) descend(k Key, fn func()) {
	mark := c.push(k)
	defer c.pop(mark)
	fn()
}

func (c *diffContext) added(k Key, v Value) {
	mark := c.push(k)
	c.emit(Operation{Op: OpAdd, Path: string(c.path), Value: v})
	c.path = c.path[:mark]
}

func (c *diffContext) removed(k Key) {
	mark := c.push(k)
	c.emit(Operation{Op: OpRemove, Path: string(c.path)})
	// later removals from the same sequence address a shorter list
	if k.IsIndex() {
		c.shift++
	}
	c.path = c.path[:mark]
}

func (c *diffContext) modified(v Value) {
	c.emit(Operation{Op: OpReplace, Path: string(c.path), Value: v})
}

func (c *diffContext) emit(op Operation) {
	c.patch = append(c.patch, op)
	c.cfg.debugf("%s %q", op.Op, op.Path)

	if st := c.cfg.Stats; st != nil {
		switch op.Op {
		case OpAdd:
			st.Adds++
		case OpRemove:
			st.Removes++
		case OpReplace:
			st.Replaces++
		}
	}
}
