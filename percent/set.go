// Package percent implements the byte-level percent-encoding primitives used
// throughout the URL state machine: the encode-set predicates and the
// encode/decode routines that apply them.
package percent

// Set is a predicate over byte values 0x00..0xFF, backed by a fixed 256-bit
// table. Unlike a general-purpose bitset, a Set never grows: every set this
// package defines is known in full at compile time, so a plain [4]uint64
// array indexed by c>>6 carries no more machinery than the job needs.
type Set [4]uint64

func (s *Set) set(c byte) {
	s[c>>6] |= 1 << (c & 63)
}

// Test reports whether c belongs to the set.
func (s Set) Test(c byte) bool {
	return s[c>>6]&(1<<(c&63)) != 0
}

func newSet(bytes ...byte) Set {
	var s Set
	for _, c := range bytes {
		s.set(c)
	}
	return s
}

// clone returns a copy of s with extra bytes added, leaving s untouched.
func (s Set) clone(extra ...byte) Set {
	c := s
	for _, b := range extra {
		c.set(b)
	}
	return c
}

func rangeSet(lo, hi byte) Set {
	var s Set
	for c := int(lo); c <= int(hi); c++ {
		s.set(byte(c))
	}
	return s
}

func union(sets ...Set) Set {
	var s Set
	for _, o := range sets {
		for i := range s {
			s[i] |= o[i]
		}
	}
	return s
}

// The seven encode sets of the standard, each layered on the one before it
// (see SPEC_FULL.md §4.1). C0Control is the base: every other set starts
// from it and adds the bytes its component of the URL must additionally
// protect.
var (
	// C0Control encodes bytes <= 0x1F and bytes > 0x7E.
	C0Control = union(rangeSet(0x00, 0x1F), rangeSet(0x7F, 0xFF))

	// Fragment adds space, '"', '<', '>', '`'.
	Fragment = C0Control.clone(' ', '"', '<', '>', '`')

	// Query is the same byte set as Fragment plus '#', which Fragment
	// leaves literal.
	Query = Fragment.clone('#')

	// SpecialQuery adds the single quote, used only for special schemes.
	SpecialQuery = Query.clone('\'')

	// Path adds '?', '`', '{', '}' on top of Query.
	Path = Query.clone('?', '`', '{', '}')

	// Userinfo adds the authority delimiters on top of Path.
	Userinfo = Path.clone('/', ':', ';', '=', '@', '[', '\\', ']', '^', '|')

	// FormComponent is Userinfo plus '?' and '#'. EncodeForm does not use
	// it: EncodeForm passes only the formUnreserved bytes below
	// (a-z A-Z 0-9 and * - . _) through literally.
	FormComponent = Userinfo.clone('?', '#')
)

var formUnreserved = newSet(
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
	'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
	'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'*', '-', '.', '_',
)
