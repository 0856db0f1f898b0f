package patchdiff

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseJSON(t *testing.T) {
	cases := []struct {
		description string
		in, expect  string
	}{
		{"keeps member order", `{"b":1,"a":2,"c":3}`, `{"b":1,"a":2,"c":3}`},
		{"keeps number text", `[1.50,1e3,-0,0.1E-2]`, `[1.50,1e3,-0,0.1E-2]`},
		{"drops whitespace", " {\n\t\"a\" : [ 1 , 2 ] }\n", `{"a":[1,2]}`},
		{"later duplicate wins", `{"a":1,"b":2,"a":3}`, `{"a":3,"b":2}`},
		{"unescapes strings", `{"k":"é \"q\" \/"}`, `{"k":"é \"q\" /"}`},
		{"no html escaping", `["<a&b>"]`, `["<a&b>"]`},
		{"escapes control characters", `"tab\there"`, `"tab\there"`},
		{"scalar document", `null`, `null`},
		{"empty compounds", `[{},[]]`, `[{},[]]`},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			v, err := ParseJSON([]byte(c.in))
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			got, err := v.MarshalJSON()
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if c.expect != string(got) {
				t.Errorf("result mismatch.\nwant: %s\ngot:  %s", c.expect, got)
			}
		})
	}
}

func TestParseJSONErrors(t *testing.T) {
	cases := []string{
		``,
		`{`,
		`{"a":}`,
		`[1,]`,
		`nul`,
		`{"a":1} trailing`,
		`'single'`,
	}
	for _, c := range cases {
		if _, err := ParseJSON([]byte(c)); !errors.Is(err, ErrInvalidJSON) {
			t.Errorf("ParseJSON(%q) expected ErrInvalidJSON, got: %v", c, err)
		}
	}
}

func TestValueUnmarshalJSON(t *testing.T) {
	var doc struct {
		Left  Value `json:"left"`
		Right Value `json:"right"`
	}
	if err := json.Unmarshal([]byte(`{"left":{"z":1,"a":2},"right":null}`), &doc); err != nil {
		t.Fatal(err)
	}
	if got := mustMarshal(doc.Left); got != `{"z":1,"a":2}` {
		t.Errorf("unexpected left: %s", got)
	}
	if doc.Right.Kind() != KindNull {
		t.Errorf("expected null right, got %s", doc.Right.Kind())
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"left":{"z":1,"a":2},"right":null}` {
		t.Errorf("unexpected marshal output: %s", data)
	}
}
