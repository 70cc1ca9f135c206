// Package host implements §4.3 of the WHATWG URL Standard: parsing and
// serializing the five host variants (domain, IPv4, IPv6, opaque, empty),
// including the WHATWG-extended IPv4 grammar and the IPv6 literal grammar.
package host

import (
	"strconv"
	"strings"

	"github.com/badu/whatwgurl/percent"
)

// Kind tags which of the five host variants a Host holds.
type Kind int

const (
	Empty Kind = iota
	Domain
	IPv4
	IPv6
	Opaque
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Domain:
		return "domain"
	case IPv4:
		return "ipv4"
	case IPv6:
		return "ipv6"
	case Opaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Host is a tagged union of the five host forms the standard recognizes.
// Only the field matching Kind is meaningful; the others are zero.
type Host struct {
	Kind   Kind
	Domain string    // Kind == Domain: the IDNA A-label (or ASCII) name
	Addr4  [4]byte   // Kind == IPv4: four octets, network order
	Addr6  [16]byte  // Kind == IPv6: sixteen octets, network order
	Opaque string    // Kind == Opaque: percent-encoded ASCII, stored as-is
}

// IsEmpty reports whether h is the Empty host.
func (h Host) IsEmpty() bool { return h.Kind == Empty }

// SubKind names the family of failure a Parse call hit, independent of the
// Go error value wrapping it, so callers can discriminate programmatically
// per the closed error taxonomy this library commits to.
type SubKind int

const (
	_ SubKind = iota
	InvalidDomain
	InvalidIPv4
	InvalidIPv6
	InvalidOpaque
	EmptyHostNotAllowed
	ForbiddenHostCodePoint
	IPv6BracketMismatch
)

func (k SubKind) String() string {
	switch k {
	case InvalidDomain:
		return "invalid-domain"
	case InvalidIPv4:
		return "invalid-ipv4"
	case InvalidIPv6:
		return "invalid-ipv6"
	case InvalidOpaque:
		return "invalid-opaque"
	case EmptyHostNotAllowed:
		return "empty-host-not-allowed"
	case ForbiddenHostCodePoint:
		return "forbidden-host-code-point"
	case IPv6BracketMismatch:
		return "ipv6-bracket-mismatch"
	default:
		return "unknown"
	}
}

// ParseError reports a host-parsing failure. Sub identifies which of the
// host sub-grammars rejected the input; Err, when non-nil, carries the
// detail the sub-grammar reported (an IPv4, IPv6, percent-decoding or IDNA
// error). ForbiddenHostCodePoint errors carry no Err and do not name the
// offending byte; Input holds the whole host string.
type ParseError struct {
	Sub   SubKind
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	msg := "invalid host " + strconv.Quote(e.Input) + ": " + e.Sub.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// forbiddenHostCodePoint lists the bytes never allowed, unescaped, in a
// domain or opaque host (the standard's "forbidden host code point" set),
// tab/newline already having been stripped from the input before a host
// ever reaches this package.
var forbiddenHostCodePoint = newByteSet('\x00', '\t', '\n', '\r', ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|')

// forbiddenDomainCodePoint extends the forbidden set with the bytes the
// standard additionally forbids in domains: '%', every remaining C0
// control, and DEL (the standard's "forbidden domain code point" set).
// parseDomain tests it against the percent-decoded domain, before the
// IDNA adapter sees it.
var forbiddenDomainCodePoint = func() byteSet {
	s := newByteSet('\x00', '\t', '\n', '\r', ' ', '#', '%', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|', '\x7f')
	for c := 0x01; c <= 0x1F; c++ {
		s[c] = true
	}
	return s
}()

type byteSet [256]bool

func newByteSet(bytes ...byte) byteSet {
	var s byteSet
	for _, c := range bytes {
		s[c] = true
	}
	return s
}

func (s byteSet) test(c byte) bool { return s[c] }

// Parse dispatches on the first byte of s and the scheme's specialness, per
// SPEC_FULL.md §4.3:
//  1. empty input -> Empty
//  2. leading '[' -> IPv6 literal (trailing ']' required)
//  3. special scheme, IPv4-candidate bytes -> WHATWG IPv4
//  4. special scheme, otherwise -> percent-decode, hand to the IDNA adapter
//  5. non-special scheme -> percent-encode with the C0-control set, Opaque
func Parse(s string, isSpecial bool) (Host, error) {
	if s == "" {
		return Host{Kind: Empty}, nil
	}
	if s[0] == '[' {
		if s[len(s)-1] != ']' {
			return Host{}, &ParseError{Sub: IPv6BracketMismatch, Input: s}
		}
		addr, err := parseIPv6(s[1 : len(s)-1])
		if err != nil {
			return Host{}, &ParseError{Sub: InvalidIPv6, Input: s, Err: err}
		}
		return Host{Kind: IPv6, Addr6: addr}, nil
	}
	if !isSpecial {
		return parseOpaque(s)
	}
	if looksLikeIPv4(s) {
		addr, err := parseIPv4(s)
		if err != nil {
			return Host{}, &ParseError{Sub: InvalidIPv4, Input: s, Err: err}
		}
		return Host{Kind: IPv4, Addr4: addr}, nil
	}
	return parseDomain(s)
}

func looksLikeIPv4(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		isHexDigitOrDotOrX := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') || c == '.' || c == 'x' || c == 'X'
		if !isHexDigitOrDotOrX {
			return false
		}
	}
	return true
}

func parseOpaque(s string) (Host, error) {
	for i := 0; i < len(s); i++ {
		if forbiddenHostCodePoint.test(s[i]) {
			return Host{}, &ParseError{Sub: ForbiddenHostCodePoint, Input: s}
		}
	}
	return Host{Kind: Opaque, Opaque: percent.Encode(s, percent.C0Control)}, nil
}

func parseDomain(s string) (Host, error) {
	raw, err := percent.Decode(s)
	if err != nil {
		return Host{}, &ParseError{Sub: InvalidDomain, Input: s, Err: err}
	}
	decoded := string(raw)
	for i := 0; i < len(decoded); i++ {
		c := decoded[i]
		if c < 0x80 && forbiddenDomainCodePoint.test(c) {
			return Host{}, &ParseError{Sub: ForbiddenHostCodePoint, Input: s}
		}
	}
	ascii, err := domainToASCII(decoded)
	if err != nil {
		return Host{}, &ParseError{Sub: InvalidDomain, Input: s, Err: err}
	}
	if ascii == "" {
		return Host{}, &ParseError{Sub: EmptyHostNotAllowed, Input: s}
	}
	return Host{Kind: Domain, Domain: ascii}, nil
}

// String serializes h per SPEC_FULL.md §4.3: domain as-is, IPv4 as four
// decimal octets, IPv6 in RFC 5952 canonical bracketed form, opaque as
// stored, empty as "".
func (h Host) String() string {
	switch h.Kind {
	case Empty:
		return ""
	case Domain:
		return h.Domain
	case IPv4:
		return formatIPv4(h.Addr4)
	case IPv6:
		return "[" + formatIPv6(h.Addr6) + "]"
	case Opaque:
		return h.Opaque
	default:
		return ""
	}
}

func formatIPv4(addr [4]byte) string {
	var b strings.Builder
	for i, o := range addr {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(o)))
	}
	return b.String()
}
