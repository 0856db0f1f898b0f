package patchdiff

import (
	"encoding/json"
	"errors"
	"testing"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/google/go-cmp/cmp"
)

func TestPatchMarshalJSON(t *testing.T) {
	cases := []struct {
		patch  Patch
		expect string
	}{
		{nil, `[]`},
		{Patch{}, `[]`},
		{
			Patch{
				{Op: OpReplace, Path: "/a", Value: Number("99")},
				{Op: OpRemove, Path: "/b/1"},
			},
			`[{"op":"replace","path":"/a","value":99},{"op":"remove","path":"/b/1"}]`,
		},
	}

	for i, c := range cases {
		got, err := json.Marshal(c.patch)
		if err != nil {
			t.Errorf("case %d unexpected error: %s", i, err)
			continue
		}
		if c.expect != string(got) {
			t.Errorf("case %d result mismatch.\nwant: %s\ngot:  %s", i, c.expect, got)
		}
	}
}

func TestDecodePatch(t *testing.T) {
	got, err := DecodePatch([]byte(`[{"op":"add","path":"/a","value":"b"},{"op":"remove","path":"/c"}]`))
	if err != nil {
		t.Fatal(err)
	}
	expect := Patch{
		{Op: OpAdd, Path: "/a", Value: String("b")},
		{Op: OpRemove, Path: "/c"},
	}
	if diff := cmp.Diff(expect, got, valueComparer); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}

	if _, err := DecodePatch([]byte(`{"op":"add"}`)); err == nil {
		t.Error("expected error decoding an object, got nil")
	}
	if _, err := DecodePatch([]byte(`[{"op":"nope","path":""}]`)); err == nil {
		t.Error("expected error decoding an unknown operation, got nil")
	}
}

func TestPatchApply(t *testing.T) {
	cases := []struct {
		description string
		doc         string
		patch       Patch
		expect      string
	}{
		{
			"replace & add",
			`{"a":1,"b":[1,2]}`,
			Patch{
				{Op: OpReplace, Path: "/a", Value: String("x")},
				{Op: OpAdd, Path: "/b/2", Value: Number("3")},
			},
			`{"a":"x","b":[1,2,3]}`,
		},
		{
			"shifted removes",
			`["a","b","c","d"]`,
			Patch{
				{Op: OpRemove, Path: "/1"},
				{Op: OpRemove, Path: "/1"},
			},
			`["a","d"]`,
		},
		{
			"escaped keys",
			`{"a/b":{"~":1}}`,
			Patch{{Op: OpReplace, Path: "/a~1b/~0", Value: Bool(true)}},
			`{"a/b":{"~":true}}`,
		},
		{
			"replace root",
			`[1]`,
			Patch{{Op: OpReplace, Path: "", Value: mustParseJSON(`{"a":1}`)}},
			`{"a":1}`,
		},
		{
			"empty patch",
			`{"a":1}`,
			Patch{},
			`{"a":1}`,
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			got, err := c.patch.Apply([]byte(c.doc))
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if !jsonpatch.Equal([]byte(c.expect), got) {
				t.Errorf("result mismatch.\nwant: %s\ngot:  %s", c.expect, got)
			}
		})
	}
}

func TestPatchApplyErrors(t *testing.T) {
	cases := []struct {
		description string
		doc         string
		patch       Patch
	}{
		{"missing key", `{}`, Patch{{Op: OpRemove, Path: "/a"}}},
		{"index out of range", `[1]`, Patch{{Op: OpRemove, Path: "/5"}}},
		{"missing parent", `{"a":1}`, Patch{{Op: OpAdd, Path: "/b/c", Value: Null()}}},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			_, err := c.patch.Apply([]byte(c.doc))
			if !errors.Is(err, ErrApply) {
				t.Errorf("expected ErrApply, got: %v", err)
			}
		})
	}
}

func TestPatchApplyValue(t *testing.T) {
	left := mustParseJSON(`{"name":"a","tags":["x","y","z"],"meta":{"n":1}}`)
	right := mustParseJSON(`{"name":"b","tags":["x"],"meta":{"n":1,"m":[]}}`)

	got, err := Diff(left, right).ApplyValue(left)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(right, got) {
		t.Errorf("result mismatch.\nwant: %s\ngot:  %s", mustMarshal(right), mustMarshal(got))
	}

	if _, err := (Patch{{Op: OpRemove, Path: "/nope"}}).ApplyValue(left); !errors.Is(err, ErrApply) {
		t.Errorf("expected ErrApply, got: %v", err)
	}
}
