package patchdiff

// Stats holds statistical metadata about a diff
type Stats struct {
	Left  int `json:"leftNodes"`  // count of nodes in the left tree
	Right int `json:"rightNodes"` // count of nodes in the right tree

	LeftWeight  int `json:"leftWeight"`  // byte-ish count of left tree
	RightWeight int `json:"rightWeight"` // byte-ish count of right tree

	Adds     int `json:"adds,omitempty"`     // number of add operations
	Replaces int `json:"replaces,omitempty"` // number of replace operations
	Removes  int `json:"removes,omitempty"`  // number of remove operations
}

// NodeChange returns a count of the shift between left & right trees
func (s Stats) NodeChange() int {
	return s.Right - s.Left
}

// Operations is the total number of operations in the patch
func (s Stats) Operations() int {
	return s.Adds + s.Replaces + s.Removes
}

// PctWeightChange returns the ratio of left tree weight to right tree weight:
// 1 when the sizes match, below 1 when the right tree is heavier. never
// negative, and 0 when the right tree has no weight
func (s Stats) PctWeightChange() float64 {
	if s.RightWeight == 0 {
		return 0
	}
	return float64(s.LeftWeight) / float64(s.RightWeight)
}
