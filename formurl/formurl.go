// Package formurl implements Section 5 of the WHATWG URL Standard, the
// application/x-www-form-urlencoded codec used for query strings and HTML
// form payloads.
package formurl

import (
	"strings"

	"github.com/badu/whatwgurl/percent"
)

// Pair is a single name/value entry of a urlencoded payload. Unlike Values,
// a []Pair slice preserves the order and duplicate-key structure of the
// original input, which is what the round-trip law in the standard actually
// requires.
type Pair struct {
	Name  string
	Value string
}

// Values maps a name to every value given for it, in the style of
// net/url.Values. Kept alongside Pair because most callers want map lookup,
// not ordering; ToValues converts one to the other.
type Values map[string][]string

// ToValues collapses an ordered pair list into a Values map, same as calling
// Get repeatedly would. Ordering of pairs for a repeated name is preserved
// within that name's slice; ordering between names is lost, as it always is
// with a map.
func ToValues(pairs []Pair) Values {
	v := make(Values, len(pairs))
	for _, p := range pairs {
		v[p.Name] = append(v[p.Name], p.Value)
	}
	return v
}

// Get returns the first value associated with key, or "" if there is none.
func (v Values) Get(key string) string {
	vs := v[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Encode serializes pairs as application/x-www-form-urlencoded: each name
// and value is encoded under the form-component rule (percent.EncodeForm),
// pairs are joined with '&', and within a pair name and value are joined
// with '='.
func Encode(pairs []Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(percent.EncodeForm(p.Name))
		b.WriteByte('=')
		b.WriteString(percent.EncodeForm(p.Value))
	}
	return b.String()
}

// EncodeValues serializes a Values map. Because map iteration order is not
// stable, callers that need a reproducible byte-for-byte result across runs
// should build an explicit []Pair and call Encode instead.
func EncodeValues(v Values) string {
	var pairs []Pair
	for name, vs := range v {
		for _, val := range vs {
			pairs = append(pairs, Pair{Name: name, Value: val})
		}
	}
	return Encode(pairs)
}

// Parse splits s on '&' (discarding empty runs), splits each run at most
// once on '=' (a run with no '=' yields a pair whose Value is ""), and
// percent-decodes each side with '+' mapped to space. It returns the first
// decode error encountered, matching the standard's "decode" entry point.
func Parse(s string) ([]Pair, error) {
	var pairs []Pair
	for _, run := range strings.Split(s, "&") {
		if run == "" {
			continue
		}
		name, value, _ := cut(run, '=')
		decName, err := percent.DecodeForm(name)
		if err != nil {
			return nil, err
		}
		decValue, err := percent.DecodeForm(value)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{Name: string(decName), Value: string(decValue)})
	}
	return pairs, nil
}

// ParseLenient behaves like Parse but silently drops any pair with a
// malformed percent-escape instead of failing the whole parse, matching the
// standard's tolerant "parse" entry point (used for query strings, where a
// single bad pair should not invalidate the rest of the URL).
func ParseLenient(s string) []Pair {
	var pairs []Pair
	for _, run := range strings.Split(s, "&") {
		if run == "" {
			continue
		}
		name, value, _ := cut(run, '=')
		decName, err := percent.DecodeForm(name)
		if err != nil {
			continue
		}
		decValue, err := percent.DecodeForm(value)
		if err != nil {
			continue
		}
		pairs = append(pairs, Pair{Name: string(decName), Value: string(decValue)})
	}
	return pairs
}

// cut splits s at the first occurrence of sep: at most one split, sep
// absent means the whole run is the name.
func cut(s string, sep byte) (before, after string, found bool) {
	if i := strings.IndexByte(s, sep); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}
