package percent

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		in  string
		set Set
		out string
	}{
		{"hello", Path, "hello"},
		{"a b", Fragment, "a%20b"},
		{"a#b", Query, "a%23b"},
		{"a'b", SpecialQuery, "a%27b"},
		{"a'b", Query, "a'b"},
		{"a{b}c", Path, "a%7Bb%7Dc"},
		{"user:pass@host", Userinfo, "user%3Apass%40host"},
		{"\x7f\x01", C0Control, "%7F%01"},
	}
	for _, tt := range tests {
		if got := Encode(tt.in, tt.set); got != tt.out {
			t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestEncodeForm(t *testing.T) {
	tests := []struct{ in, out string }{
		{"John Doe", "John+Doe"},
		{"john@example.com", "john%40example.com"},
		{"a*b-c.d_e", "a*b-c.d_e"},
		{"Hello World!", "Hello+World%21"},
	}
	for _, tt := range tests {
		if got := EncodeForm(tt.in); got != tt.out {
			t.Errorf("EncodeForm(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in      string
		out     string
		wantErr bool
	}{
		{"a%20b", "a b", false},
		{"a%2fb", "a/b", false},
		{"a+b", "a+b", false},
		{"%", "", true},
		{"%2", "", true},
		{"%GG", "", true},
		{"test%", "", true},
	}
	for _, tt := range tests {
		got, err := Decode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Decode(%q) = %q, nil, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Decode(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if string(got) != tt.out {
			t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestDecodeForm(t *testing.T) {
	got, err := DecodeForm("Hello+World%21")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "Hello World!" {
		t.Errorf("DecodeForm = %q, want %q", got, "Hello World!")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := "h\xc3\xa9llo wörld/?#[]"
	enc := Encode(in, Path)
	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(dec) != in {
		t.Errorf("roundtrip mismatch: got %q, want %q", dec, in)
	}
}

func TestDecodeStringPreservesInvalidUTF8Escapes(t *testing.T) {
	// %FF is not valid UTF-8 on its own; DecodeString must leave it as
	// the original escape rather than substituting U+FFFD.
	got := DecodeString("%FF")
	if got != "%FF" {
		t.Errorf("DecodeString(%%FF) = %q, want %%FF", got)
	}
	if got := DecodeString("caf%C3%A9"); got != "café" {
		t.Errorf("DecodeString(caf%%C3%%A9) = %q, want café", got)
	}
}
