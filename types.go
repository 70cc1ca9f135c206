// Package whatwgurl implements the WHATWG URL Living Standard: parsing a
// URL string (optionally against a base URL) into a structured value,
// normalizing it, and serializing it back to canonical ASCII. See
// SPEC_FULL.md for the full component breakdown.
package whatwgurl

import (
	"strconv"

	"github.com/badu/whatwgurl/host"
)

// PathKind tags which of the two Path variants a Path holds.
type PathKind int

const (
	// PathList is an ordered, possibly-empty sequence of segments (the
	// default for special schemes and any scheme whose path begins with
	// a slash). Its segments are never "." or ".."; an empty segment
	// stands for an empty run between slashes, such as the one a
	// trailing slash leaves ("http://h/" has the single segment "").
	PathList PathKind = iota
	// PathOpaque is a single flat string, used by schemes like mailto:
	// and data: whose path is not slash-structured.
	PathOpaque
)

// Path is a tagged union of the two path forms (SPEC_FULL.md §3).
type Path struct {
	Kind    PathKind
	Segments []string // Kind == PathList
	Opaque  string     // Kind == PathOpaque
}

// URL is a parsed, normalized URL value (SPEC_FULL.md §3). It is built once
// by Parse and never mutated in place; "updates" go through WithScheme or a
// fresh Parse call.
type URL struct {
	Scheme   string
	Username string
	Password string
	Host     host.Host
	HasHost  bool // false when the URL has no authority (opaque-path URLs, and non-special URLs like "foo:/bar")
	Port     *uint16
	Path     Path
	Query    *string
	Fragment *string
}

// schemeInfo records a special scheme's default port. file has no default
// port (and no notion of "port" at all, since file URLs never carry one).
type schemeInfo struct {
	defaultPort uint16
	hasPort     bool
}

// specialSchemes is the fixed table of SPEC_FULL.md §3. It is built once at
// init and never mutated afterward; DefaultPort and IsSpecial are the only
// exported ways to read it.
var specialSchemes = map[string]schemeInfo{
	"ftp":   {defaultPort: 21, hasPort: true},
	"http":  {defaultPort: 80, hasPort: true},
	"https": {defaultPort: 443, hasPort: true},
	"ws":    {defaultPort: 80, hasPort: true},
	"wss":   {defaultPort: 443, hasPort: true},
	"file":  {hasPort: false},
}

// IsSpecial reports whether scheme is one of the six schemes the standard
// calls "special" (ftp, http, https, ws, wss, file).
func IsSpecial(scheme string) bool {
	_, ok := specialSchemes[scheme]
	return ok
}

// DefaultPort returns scheme's default port and true, or (0, false) if
// scheme is not special or is "file" (which has no default port at all).
func DefaultPort(scheme string) (uint16, bool) {
	info, ok := specialSchemes[scheme]
	if !ok || !info.hasPort {
		return 0, false
	}
	return info.defaultPort, true
}

// Kind enumerates the closed set of parse-failure kinds (SPEC_FULL.md §7).
// Downstream code discriminates on Kind, never on (*ParseError).Error()'s
// message text.
type Kind int

const (
	_ Kind = iota
	EmptyInput
	InvalidScheme
	MissingSchemeSeparator
	InvalidHost
	InvalidPort
	InvalidPath
	CannotHaveCredentials
)

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "empty-input"
	case InvalidScheme:
		return "invalid-scheme"
	case MissingSchemeSeparator:
		return "missing-scheme-separator"
	case InvalidHost:
		return "invalid-host"
	case InvalidPort:
		return "invalid-port"
	case InvalidPath:
		return "invalid-path"
	case CannotHaveCredentials:
		return "cannot-have-credentials"
	default:
		return "unknown"
	}
}

// ParseError reports why Parse rejected an input, grounded on the
// reference stack's *url.Error{Op, URL, Err} wrapper shape: Kind is the
// failure kind, Input is the string as passed to Parse (before trimming),
// and Msg carries the Kind-specific detail. Error() prefixes them with
// "parse".
type ParseError struct {
	Kind  Kind
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return "parse " + strconv.Quote(e.Input) + ": " + e.Kind.String() + ": " + e.Msg
}

func newParseError(kind Kind, input, msg string) *ParseError {
	return &ParseError{Kind: kind, Input: input, Msg: msg}
}
