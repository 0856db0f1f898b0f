// Package patchdiff is a structured data differ that produces JSON Patch
// (RFC 6902) edit scripts. Given two documents it emits an ordered list of
// add, remove & replace operations that turn the first document into the
// second when applied in order:
//   https://tools.ietf.org/html/rfc6902
//
// Instead of operating on encoded bytes directly, patchdiff operates on a
// document tree of Values, a closed set of two compound kinds:
//   Sequence (an ordered list of values)
//   Mapping  (an ordered collection of uniquely named values)
// and four scalar kinds:
//   Null, Bool, Number, String
// Values can be built from JSON (ParseJSON), YAML (ParseYAML) or the generic
// go types created by unmarshaling into an interface{} (FromInterface), so
// documents encoded in different formats can be compared with one another.
//
// The differ is a greedy, single pass structural comparison. Unchanged
// subtrees are pruned with a deep equality check, scalars & shape changes
// become replacements, and same-shaped compounds are recursed into, matching
// children by key. Within one compound, changes to matched children are
// emitted first, then additions, then removals. Removals from a sequence are
// renumbered to account for the elements already removed ahead of them.
// patchdiff never detects moves or copies, and does not attempt to find the
// smallest possible edit script.
//
// Paths in the edit script are JSON pointers (RFC 6901): "" is the document
// root, "/" separates segments, "~1" escapes a literal "/" and "~0" escapes a
// literal "~" in a mapping key:
//   https://tools.ietf.org/html/rfc6901
//
// Applying a patch is left to a JSON Patch engine, Patch.Apply is a thin
// adapter over github.com/evanphx/json-patch/v5
package patchdiff
