package refset

import (
	"reflect"
	"testing"
)

func TestDecodeEmpty(t *testing.T) {
	if got := Decode(""); len(got) != 0 {
		t.Errorf("Decode(\"\") = %v, want empty", got)
	}
}

func TestEncodeEmpty(t *testing.T) {
	if got := Encode(nil); got != "" {
		t.Errorf("Encode(nil) = %q, want \"\"", got)
	}
	if got := Encode([]string{}); got != "" {
		t.Errorf("Encode([]) = %q, want \"\"", got)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := [][]string{
		{"e1"},
		{"e1", "e2"},
		{"e1", "e2", "e3"},
		{"e1", "e1"}, // duplicates survive the round trip
	}

	for _, ids := range cases {
		if got := Decode(Encode(ids)); !reflect.DeepEqual(got, ids) {
			t.Errorf("Decode(Encode(%v)) = %v", ids, got)
		}
	}
}

func TestDecodeDropsEmptySegments(t *testing.T) {
	cases := map[string][]string{
		"e1,,e2":  {"e1", "e2"},
		",e1":     {"e1"},
		"e1,":     {"e1"},
		",":       {},
		"e1,e2,e3": {"e1", "e2", "e3"},
	}

	for raw, want := range cases {
		got := Decode(raw)
		if len(got) == 0 && len(want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Decode(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains("e1,e2", "e2") {
		t.Error("expected e2 in \"e1,e2\"")
	}
	if Contains("e1,e2", "e3") {
		t.Error("did not expect e3 in \"e1,e2\"")
	}
	if Contains("", "e1") {
		t.Error("did not expect e1 in empty set")
	}
}

func TestRemove(t *testing.T) {
	cases := []struct {
		raw, id, want string
	}{
		{"e1,e2", "e1", "e2"},
		{"e1,e2", "e2", "e1"},
		{"e1", "e1", ""},
		{"e1,e2,e1", "e1", "e2"}, // removes every occurrence
		{"e1,e2", "e3", "e1,e2"},
		{"", "e1", ""},
	}

	for _, c := range cases {
		if got := Remove(c.raw, c.id); got != c.want {
			t.Errorf("Remove(%q, %q) = %q, want %q", c.raw, c.id, got, c.want)
		}
	}
}
