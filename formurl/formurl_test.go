package formurl

import "testing"

func TestEncode(t *testing.T) {
	pairs := []Pair{
		{"name", "John Doe"},
		{"email", "john@example.com"},
	}
	want := "name=John+Doe&email=john%40example.com"
	if got := Encode(pairs); got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("name=John+Doe&email=john%40example.com")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Pair{
		{"name", "John Doe"},
		{"email", "john@example.com"},
	}
	if len(got) != len(want) {
		t.Fatalf("Parse returned %d pairs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseEmptyRunsAndMissingEquals(t *testing.T) {
	got, err := Parse("a=1&&b&c=")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Pair{{"a", "1"}, {"b", ""}, {"c", ""}}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseMalformedEscape(t *testing.T) {
	if _, err := Parse("a=%GG"); err == nil {
		t.Error("Parse with malformed escape: want error, got nil")
	}
}

func TestParseLenientDropsMalformedPair(t *testing.T) {
	got := ParseLenient("a=1&b=%GG&c=3")
	want := []Pair{{"a", "1"}, {"c", "3"}}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	pairs := []Pair{
		{"x", "Hello World!"},
		{"key with spaces", "v=a&b"},
		{"unicode", "héllo"},
	}
	back, err := Parse(Encode(pairs))
	if err != nil {
		t.Fatalf("Parse(Encode(...)): %v", err)
	}
	if len(back) != len(pairs) {
		t.Fatalf("roundtrip length mismatch: got %d, want %d", len(back), len(pairs))
	}
	for i := range pairs {
		if back[i] != pairs[i] {
			t.Errorf("pair %d = %+v, want %+v", i, back[i], pairs[i])
		}
	}
}

func TestToValues(t *testing.T) {
	v := ToValues([]Pair{{"a", "1"}, {"a", "2"}, {"b", "3"}})
	if got := v.Get("a"); got != "1" {
		t.Errorf("Get(a) = %q, want 1", got)
	}
	if len(v["a"]) != 2 {
		t.Errorf("len(v[a]) = %d, want 2", len(v["a"]))
	}
}
