package patchdiff

import (
	"encoding/json"
	"fmt"
	"os"
)

func ExampleDiffJSON() {
	// we'll use the RFC 6902 example documents
	left := []byte(`{
		"title": "Goodbye!",
		"author": {"givenName": "John", "familyName": "Doe"},
		"tags": ["example", "sample"],
		"content": "This will be unchanged"
	}`)
	right := []byte(`{
		"title": "Hello!",
		"author": {"givenName": "John"},
		"tags": ["example"],
		"content": "This will be unchanged",
		"phoneNumber": "+01-123-456-7890"
	}`)

	patch, err := DiffJSON(left, right)
	if err != nil {
		panic(err)
	}

	for _, op := range patch {
		data, err := json.Marshal(op)
		if err != nil {
			panic(err)
		}
		fmt.Println(string(data))
	}

	// Output: {"op":"replace","path":"/title","value":"Hello!"}
	// {"op":"remove","path":"/author/familyName"}
	// {"op":"remove","path":"/tags/1"}
	// {"op":"add","path":"/phoneNumber","value":"+01-123-456-7890"}
}

func ExampleFormatPretty() {
	left := mustParseJSON(`{"name":"patchdiff","versions":["v0.1.0","v0.2.0","v0.3.0"],"stable":false}`)
	right := mustParseJSON(`{"name":"patchdiff","versions":["v0.1.0"],"stable":true,"license":"MIT"}`)

	stats := &Stats{}
	patch := Diff(left, right, OptionSetStats(stats))

	if err := FormatPretty(os.Stdout, patch, false); err != nil {
		panic(err)
	}
	fmt.Print(FormatPrettyStats(stats))

	// Output: - /versions/1
	// - /versions/1
	// ~ /stable: true
	// + /license: "MIT"
	// -1 element. 1 add. 2 removes. 1 replace.
}

func ExamplePatch_Apply() {
	left := []byte(`{"a":[1,2,3],"b":{"c":"d"}}`)
	right := []byte(`{"a":[1],"b":{"c":"e"}}`)

	patch, err := DiffJSON(left, right)
	if err != nil {
		panic(err)
	}

	patched, err := patch.Apply(left)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(patched))

	// Output: {"a":[1],"b":{"c":"e"}}
}
