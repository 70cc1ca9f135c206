package whatwgurl

import (
	"strconv"
	"strings"
)

// String serializes u to its canonical ASCII form (SPEC_FULL.md §4.6):
// scheme, authority (userinfo, host, non-default port), path, query,
// fragment, each included only when present.
func (u URL) String() string {
	var b []byte
	b = append(b, u.Scheme...)
	b = append(b, ':')

	if u.HasHost {
		b = append(b, '/', '/')
		if u.Username != "" || u.Password != "" {
			b = append(b, u.Username...)
			if u.Password != "" {
				b = append(b, ':')
				b = append(b, u.Password...)
			}
			b = append(b, '@')
		}
		b = append(b, u.Host.String()...)
		if u.Port != nil {
			b = append(b, ':')
			b = strconv.AppendUint(b, uint64(*u.Port), 10)
		}
	}

	switch u.Path.Kind {
	case PathOpaque:
		b = append(b, u.Path.Opaque...)
	default:
		for _, seg := range u.Path.Segments {
			b = append(b, '/')
			b = append(b, seg...)
		}
	}

	if u.Query != nil {
		b = append(b, '?')
		b = append(b, *u.Query...)
	}
	if u.Fragment != nil {
		b = append(b, '#')
		b = append(b, *u.Fragment...)
	}
	return string(b)
}

// Origin computes the tuple origin of u (SPEC_FULL.md §4.6's origin_of): for
// http(s)/ws(s)/ftp with a host, "scheme://host[:port]"; for file and any
// other case, the opaque origin "null".
func Origin(u URL) string {
	if !u.HasHost || !IsSpecial(u.Scheme) || u.Scheme == "file" {
		return "null"
	}
	var b []byte
	b = append(b, u.Scheme...)
	b = append(b, ':', '/', '/')
	b = append(b, u.Host.String()...)
	if u.Port != nil {
		b = append(b, ':')
		b = strconv.AppendUint(b, uint64(*u.Port), 10)
	}
	return string(b)
}

// Equal reports whether a and b are the same URL: same serialization and
// same scheme-relative semantics. Two URLs that serialize identically are
// always equal; this also covers the case where one's port field is nil
// (the scheme default) and the other's is the explicit default value,
// since both produce the same String() output.
func Equal(a, b URL) bool {
	return a.String() == b.String()
}

// WithScheme reparses u under a different scheme, reusing the Basic URL
// Parser instead of duplicating its scheme-validation logic (the
// authoritative acceptance rule for a scheme lives in exactly one place:
// runStateMachine's stScheme case). When u has an authority and scheme's
// specialness differs from u's (for example http to mailto), it fails with
// InvalidScheme before reparsing; otherwise it fails the same way Parse
// fails on the rebuilt string.
func WithScheme(u URL, scheme string) (URL, error) {
	if u.HasHost && IsSpecial(u.Scheme) != IsSpecial(scheme) {
		return URL{}, newParseError(InvalidScheme, scheme, "cannot switch between special and non-special schemes while an authority is present")
	}
	rest := u.String()
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		rest = rest[i+1:]
	}
	return Parse(scheme+":"+rest, nil)
}
