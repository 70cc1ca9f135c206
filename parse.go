package whatwgurl

import "strings"

// c0OrSpace reports whether b is a C0 control or space, the set Parse
// trims from both ends of its input before anything else happens
// (SPEC_FULL.md §4.5, step 1).
func c0OrSpace(b byte) bool { return b <= 0x20 }

func isTabOrNewline(b byte) bool { return b == 0x09 || b == 0x0A || b == 0x0D }

// preprocess trims leading/trailing C0 controls and space, then strips every
// embedded tab and newline, per SPEC_FULL.md §4.5 step 1.
func preprocess(input string) string {
	i, j := 0, len(input)
	for i < j && c0OrSpace(input[i]) {
		i++
	}
	for j > i && c0OrSpace(input[j-1]) {
		j--
	}
	input = input[i:j]

	if strings.IndexFunc(input, func(r rune) bool { return r == '\t' || r == '\n' || r == '\r' }) < 0 {
		return input
	}
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		if isTabOrNewline(c) {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Parse implements the Basic URL Parser (SPEC_FULL.md §4.5). If input is a
// relative reference, base supplies the missing components; base may be nil
// when input is known to be absolute.
func Parse(input string, base *URL) (URL, error) {
	trimmed := preprocess(input)
	if trimmed == "" {
		if base == nil {
			return URL{}, newParseError(EmptyInput, input, "empty input with no base URL")
		}
		// An empty relative reference resolves to the base URL itself
		// (SPEC_FULL.md §4.5's no-scheme "end of input" case) — short-circuit
		// here rather than relying on the state machine to reach that branch,
		// since the main loop's bottom-of-loop eof check would otherwise
		// break out before scheme-start's own base-fallback transition ever
		// gets to execute it.
		return URL{
			Scheme:   base.Scheme,
			Username: base.Username,
			Password: base.Password,
			Host:     base.Host,
			HasHost:  base.HasHost,
			Port:     copyPortPtr(base.Port),
			Path:     copyPath(base.Path),
			Query:    copyStringPtr(base.Query),
			Fragment: copyStringPtr(base.Fragment),
		}, nil
	}
	return runStateMachine(trimmed, input, base)
}

// MustParse is like Parse but panics on error. It exists for tests and for
// call sites constructing a URL from a literal they know is valid.
func MustParse(input string, base *URL) URL {
	u, err := Parse(input, base)
	if err != nil {
		panic(err)
	}
	return u
}

func copyPath(p Path) Path {
	cp := Path{Kind: p.Kind, Opaque: p.Opaque}
	if len(p.Segments) > 0 {
		cp.Segments = append([]string(nil), p.Segments...)
	}
	return cp
}

func copyPortPtr(p *uint16) *uint16 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
