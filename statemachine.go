package whatwgurl

import (
	"strconv"
	"strings"

	"github.com/badu/whatwgurl/host"
	"github.com/badu/whatwgurl/percent"
)

// state names the 14 states of the Basic URL Parser (SPEC_FULL.md §4.5).
type state int

const (
	stSchemeStart state = iota
	stScheme
	stNoScheme
	stSpecialAuthoritySlashes
	stPathOrAuthority
	stAuthority
	stHost
	stPort
	stPathStart
	stPath
	stRelativePath
	stOpaquePath
	stQuery
	stFragment
)

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }

func isSchemeChar(c byte) bool {
	return isAlpha(c) || isDigitByte(c) || c == '+' || c == '-' || c == '.'
}

// isWindowsDriveLetterSegment reports whether s is a normalized Windows
// drive letter ("C:", "c:", ...), the one case file: URLs protect from the
// ordinary ".."-driven path shortening (SPEC_FULL.md §4.5 file: notes).
func isWindowsDriveLetterSegment(s string) bool {
	return len(s) == 2 && isAlpha(s[0]) && s[1] == ':'
}

// canShortenPath reports whether a ".." segment (or an implicit drop during
// relative-path resolution) is allowed to remove the last path segment.
func canShortenPath(scheme string, segments []string) bool {
	if len(segments) == 0 {
		return false
	}
	if scheme == "file" && len(segments) == 1 && isWindowsDriveLetterSegment(segments[0]) {
		return false
	}
	return true
}

// runStateMachine drives the state table over trimmed (the preprocessed
// input); rawInput is kept only to label the returned error with what the
// caller actually passed to Parse.
func runStateMachine(trimmed, rawInput string, base *URL) (URL, error) {
	cur := newCursor([]byte(trimmed))
	st := stSchemeStart

	var u URL
	var schemeStart int
	var hostStart int
	var portStart int
	var segStart int
	var authSegStart int
	var insideBrackets bool
	var atSignSeen bool
	var passwordTokenSeen bool
	var isSpecialScheme bool

	fail := func(kind Kind, msg string) (URL, error) {
		return URL{}, newParseError(kind, rawInput, msg)
	}

	for {
		c := cur.next()

		switch st {
		case stSchemeStart:
			if !cur.eof && isAlpha(c) {
				schemeStart = cur.pos - 1
				st = stScheme
			} else if base != nil {
				st = stNoScheme
				cur.rewindLast()
			} else {
				return fail(InvalidScheme, "scheme must start with an ASCII letter")
			}

		case stScheme:
			switch {
			case !cur.eof && isSchemeChar(c):
				// keep scanning; the scheme is lowercased at ':' time.
			case !cur.eof && c == ':':
				raw := trimmed[schemeStart : cur.pos-1]
				u.Scheme = strings.ToLower(raw)
				isSpecialScheme = IsSpecial(u.Scheme)
				switch {
				case isSpecialScheme:
					st = stSpecialAuthoritySlashes
				case cur.remainingStartsWith("/"):
					cur.next()
					st = stPathOrAuthority
				default:
					segStart = cur.pos
					st = stOpaquePath
				}
			default:
				if base == nil {
					return fail(InvalidScheme, "invalid character in scheme")
				}
				cur.rewind(cur.pos)
				st = stNoScheme
			}

		case stNoScheme:
			u.Scheme = base.Scheme
			isSpecialScheme = IsSpecial(u.Scheme)
			switch {
			case cur.eof:
				u.Username, u.Password = base.Username, base.Password
				u.Host, u.HasHost = base.Host, base.HasHost
				u.Port = copyPortPtr(base.Port)
				u.Path = copyPath(base.Path)
				u.Query = copyStringPtr(base.Query)
				u.Fragment = copyStringPtr(base.Fragment)
				return u, nil
			case c == '/':
				if cur.remainingStartsWith("/") && isSpecialScheme {
					cur.next()
					st = stAuthority
					authSegStart = cur.pos
				} else {
					u.Host, u.HasHost = base.Host, base.HasHost
					u.Port = copyPortPtr(base.Port)
					segStart = cur.pos
					st = stPathStart
				}
			case c == '?':
				u.Host, u.HasHost = base.Host, base.HasHost
				u.Port = copyPortPtr(base.Port)
				u.Path = copyPath(base.Path)
				q := ""
				u.Query = &q
				segStart = cur.pos
				st = stQuery
			case c == '#':
				u.Host, u.HasHost = base.Host, base.HasHost
				u.Port = copyPortPtr(base.Port)
				u.Path = copyPath(base.Path)
				u.Query = copyStringPtr(base.Query)
				f := ""
				u.Fragment = &f
				segStart = cur.pos
				st = stFragment
			default:
				u.Host, u.HasHost = base.Host, base.HasHost
				u.Port = copyPortPtr(base.Port)
				u.Path = copyPath(base.Path)
				st = stRelativePath
				cur.rewindLast()
			}

		case stSpecialAuthoritySlashes:
			if c == '/' && cur.remainingStartsWith("/") {
				cur.next()
				st = stAuthority
				authSegStart = cur.pos
			} else {
				return fail(MissingSchemeSeparator, "special scheme requires //")
			}

		case stPathOrAuthority:
			if c == '/' {
				st = stAuthority
				authSegStart = cur.pos
			} else {
				st = stPath
				cur.rewindLast()
				segStart = cur.pos
			}

		case stAuthority:
			switch {
			case !cur.eof && c == '@':
				flushAuthority(trimmed[authSegStart:cur.pos-1], &atSignSeen, &passwordTokenSeen, &u)
				authSegStart = cur.pos
			case cur.eof || c == '/' || c == '?' || c == '#':
				cur.rewind(cur.pos - authSegStart)
				hostStart = cur.pos
				st = stHost
			}

		case stHost:
			switch {
			case !cur.eof && c == '[':
				insideBrackets = true
			case !cur.eof && c == ']':
				insideBrackets = false
			case !cur.eof && c == ':' && !insideBrackets:
				h, err := host.Parse(trimmed[hostStart:cur.pos-1], isSpecialScheme)
				if err != nil {
					return fail(InvalidHost, err.Error())
				}
				if (h.IsEmpty() || u.Scheme == "file") && (u.Username != "" || u.Password != "") {
					return fail(CannotHaveCredentials, "userinfo requires a non-empty, non-file host")
				}
				if u.Scheme == "file" {
					return fail(InvalidPort, "file URLs cannot have a port")
				}
				u.Host, u.HasHost = h, true
				portStart = cur.pos
				st = stPort
			case cur.eof || c == '/' || c == '?' || c == '#':
				h, err := host.Parse(trimmed[hostStart:cur.tokenEnd()], isSpecialScheme)
				if err != nil {
					return fail(InvalidHost, err.Error())
				}
				if (h.IsEmpty() || u.Scheme == "file") && (u.Username != "" || u.Password != "") {
					return fail(CannotHaveCredentials, "userinfo requires a non-empty, non-file host")
				}
				u.Host, u.HasHost = h, true
				st = stPathStart
				cur.rewindLast()
			}

		case stPort:
			switch {
			case !cur.eof && isDigitByte(c):
				// accumulate; value read back from the slice at flush time
			case cur.eof || c == '/' || c == '?' || c == '#':
				raw := trimmed[portStart:cur.tokenEnd()]
				if raw != "" {
					n, err := strconv.ParseUint(raw, 10, 32)
					if err != nil || n > 65535 {
						return fail(InvalidPort, "port out of range")
					}
					if dp, ok := DefaultPort(u.Scheme); ok && uint16(n) == dp {
						u.Port = nil
					} else {
						p := uint16(n)
						u.Port = &p
					}
				}
				st = stPathStart
				cur.rewindLast()
			default:
				return fail(InvalidPort, "port must be all digits")
			}

		case stPathStart:
			st = stPath
			if !cur.eof && c != '/' {
				cur.rewindLast()
			}
			segStart = cur.pos

		case stPath:
			if cur.eof || c == '/' || c == '?' || c == '#' {
				raw := trimmed[segStart:cur.tokenEnd()]
				encoded := percent.Encode(raw, percent.Path)
				switch {
				case isDoubleDotSegment(encoded):
					if canShortenPath(u.Scheme, u.Path.Segments) {
						u.Path.Segments = u.Path.Segments[:len(u.Path.Segments)-1]
					}
					if c != '/' {
						u.Path.Segments = append(u.Path.Segments, "")
					}
				case isSingleDotSegment(encoded):
					if c != '/' {
						u.Path.Segments = append(u.Path.Segments, "")
					}
				default:
					u.Path.Segments = append(u.Path.Segments, encoded)
				}
				segStart = cur.pos
				switch {
				case c == '?':
					q := ""
					u.Query = &q
					st = stQuery
				case c == '#':
					f := ""
					u.Fragment = &f
					st = stFragment
				}
			}

		case stRelativePath:
			if !cur.eof && c != '/' {
				if canShortenPath(u.Scheme, u.Path.Segments) {
					u.Path.Segments = u.Path.Segments[:len(u.Path.Segments)-1]
				}
			}
			st = stPath
			cur.rewindLast()
			segStart = cur.pos

		case stOpaquePath:
			if cur.eof || c == '?' || c == '#' {
				raw := trimmed[segStart:cur.tokenEnd()]
				u.Path = Path{Kind: PathOpaque, Opaque: percent.Encode(raw, percent.C0Control)}
				segStart = cur.pos
				switch {
				case c == '?':
					q := ""
					u.Query = &q
					st = stQuery
				case c == '#':
					f := ""
					u.Fragment = &f
					st = stFragment
				}
			}

		case stQuery:
			if cur.eof || c == '#' {
				raw := trimmed[segStart:cur.tokenEnd()]
				set := percent.Query
				if isSpecialScheme {
					set = percent.SpecialQuery
				}
				encoded := percent.Encode(raw, set)
				u.Query = &encoded
				if c == '#' {
					f := ""
					u.Fragment = &f
					segStart = cur.pos
					st = stFragment
				}
			}

		case stFragment:
			if cur.eof {
				raw := trimmed[segStart:cur.tokenEnd()]
				encoded := percent.Encode(raw, percent.Fragment)
				u.Fragment = &encoded
			}
		}

		if cur.eof {
			break
		}
	}

	if u.Port != nil && u.Host.IsEmpty() {
		return fail(CannotHaveCredentials, "port requires a non-empty host")
	}
	return u, nil
}

// flushAuthority processes one '@'-delimited chunk of the authority,
// splitting it on its first unescaped ':' into username/password and
// percent-encoding each byte under the Userinfo set. It mirrors the
// reference algorithm's behavior of re-prefixing "%40" and continuing to
// accumulate into username/password across multiple '@' occurrences
// (e.g. "a@b@host" treats the embedded '@' as part of the credentials).
func flushAuthority(chunk string, atSignSeen, passwordTokenSeen *bool, u *URL) {
	if *atSignSeen {
		chunk = "%40" + chunk
	}
	*atSignSeen = true
	for i := 0; i < len(chunk); i++ {
		b := chunk[i]
		if b == ':' && !*passwordTokenSeen {
			*passwordTokenSeen = true
			continue
		}
		enc := percent.Encode(string([]byte{b}), percent.Userinfo)
		if *passwordTokenSeen {
			u.Password += enc
		} else {
			u.Username += enc
		}
	}
}

func isSingleDotSegment(s string) bool {
	return s == "." || strings.EqualFold(s, "%2e")
}

func isDoubleDotSegment(s string) bool {
	if s == ".." {
		return true
	}
	lower := strings.ToLower(s)
	return lower == ".%2e" || lower == "%2e." || lower == "%2e%2e"
}
