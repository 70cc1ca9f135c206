package host

import "testing"

func TestParseIPv4Variants(t *testing.T) {
	tests := []struct {
		in   string
		want [4]byte
	}{
		{"192.168.1.1", [4]byte{192, 168, 1, 1}},
		{"0xC0.0xA8.0x1.0x1", [4]byte{192, 168, 1, 1}},
		{"0300.0250.01.01", [4]byte{192, 168, 1, 1}},
		{"3232235777", [4]byte{192, 168, 1, 1}},
		{"192.168.257", [4]byte{192, 168, 1, 1}},
	}
	for _, tt := range tests {
		got, err := parseIPv4(tt.in)
		if err != nil {
			t.Errorf("parseIPv4(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseIPv4(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseIPv4Overflow(t *testing.T) {
	if _, err := parseIPv4("256.1.1.1"); err == nil {
		t.Error("parseIPv4(256.1.1.1): want error, got nil")
	}
	if _, err := parseIPv4("1.2.3.4.5"); err == nil {
		t.Error("parseIPv4(1.2.3.4.5): want error, got nil")
	}
}

func TestParseIPv6(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2001:db8::1", "2001:db8::1"},
		{"::1", "::1"},
		{"::", "::"},
		{"::ffff:192.168.1.1", "::ffff:c0a8:101"},
		{"1:2:3:4:5:6:7:8", "1:2:3:4:5:6:7:8"},
		{"2001:DB8::1", "2001:db8::1"},
		{"1::", "1::"},
		{"2001:db8::", "2001:db8::"},
		{"fe80::", "fe80::"},
	}
	for _, tt := range tests {
		addr, err := parseIPv6(tt.in)
		if err != nil {
			t.Errorf("parseIPv6(%q) error: %v", tt.in, err)
			continue
		}
		if got := formatIPv6(addr); got != tt.want {
			t.Errorf("formatIPv6(parseIPv6(%q)) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseIPv6ZoneIDStripped(t *testing.T) {
	a, err := parseIPv6("fe80::1%eth0")
	if err != nil {
		t.Fatalf("parseIPv6: %v", err)
	}
	b, err := parseIPv6("fe80::1")
	if err != nil {
		t.Fatalf("parseIPv6: %v", err)
	}
	if a != b {
		t.Errorf("zone id should be discarded: %v != %v", a, b)
	}
}

func TestParseIPv6DoubleCompressionRejected(t *testing.T) {
	if _, err := parseIPv6("1::2::3"); err == nil {
		t.Error("parseIPv6(1::2::3): want error, got nil")
	}
}

func TestParseNotIPv6(t *testing.T) {
	if _, err := Parse("[not-ipv6]", true); err == nil {
		t.Error(`Parse("[not-ipv6]"): want error, got nil`)
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse("", true)
	if err != nil {
		t.Fatalf("Parse(\"\"): %v", err)
	}
	if got.Kind != Empty {
		t.Errorf("Parse(\"\").Kind = %v, want Empty", got.Kind)
	}
}

func TestParseDomain(t *testing.T) {
	got, err := Parse("example.com", true)
	if err != nil {
		t.Fatalf("Parse(example.com): %v", err)
	}
	if got.Kind != Domain || got.Domain != "example.com" {
		t.Errorf("Parse(example.com) = %+v", got)
	}
}

func TestParseOpaqueForNonSpecialScheme(t *testing.T) {
	got, err := Parse("host%20name", false)
	if err != nil {
		t.Fatalf("Parse opaque: %v", err)
	}
	if got.Kind != Opaque {
		t.Errorf("Parse opaque Kind = %v, want Opaque", got.Kind)
	}
}

func TestHostStringRoundTrip(t *testing.T) {
	h, err := Parse("[2001:db8::1]", true)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := h.String(); got != "[2001:db8::1]" {
		t.Errorf("String() = %q, want [2001:db8::1]", got)
	}
}
