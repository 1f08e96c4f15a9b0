package carnet

import (
	"strconv"
	"strings"
)

// Metadata is the typed front-matter header of a document.
type Metadata struct {
	Title  string   `json:"title"`
	Order  int      `json:"order"`
	Parent string   `json:"parent,omitempty"`
	Tags   []string `json:"tags,omitempty"`

	// Raw retains every header key, including ones the typed fields do
	// not surface.
	Raw map[string]Value `json:"-"`
}

// ValueKind discriminates the closed set of front-matter value types.
type ValueKind int

// Front-matter value kinds.
const (
	ValueString ValueKind = iota
	ValueNumber
	ValueNull
	ValueList
)

// Value is one coerced front-matter value: a string, a number, null, or a
// list of strings. The zero value is the empty string.
type Value struct {
	Kind   ValueKind
	String string
	Number float64
	List   []string
}

// ParseFrontMatter splits a document into typed metadata and body. The
// header block is delimited by a line of exactly three dashes, content,
// then another such line, immediately followed by the body. When the
// delimiter pattern is absent the metadata is nil and the whole text is
// body. Malformed headers never produce an error; callers fall back to
// identifier-derived defaults.
func ParseFrontMatter(text string) (*Metadata, string) {
	header, body, ok := splitHeader(text)
	if !ok {
		return nil, text
	}

	raw := make(map[string]Value)
	for _, line := range strings.Split(header, "\n") {
		i := strings.Index(line, ":")
		if i <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		raw[key] = coerceValue(strings.TrimSpace(line[i+1:]))
	}

	md := &Metadata{Raw: raw}
	if v, ok := raw["title"]; ok && v.Kind == ValueString {
		md.Title = v.String
	}
	if v, ok := raw["order"]; ok && v.Kind == ValueNumber {
		md.Order = int(v.Number)
	}
	if v, ok := raw["parent"]; ok && v.Kind == ValueString {
		md.Parent = v.String
	}
	if v, ok := raw["tags"]; ok && v.Kind == ValueList {
		md.Tags = v.List
	}
	return md, body
}

// splitHeader isolates the delimited header block. Returns ok=false when
// the text does not start with a "---" line or the closing line is missing.
func splitHeader(text string) (header, body string, ok bool) {
	rest, found := strings.CutPrefix(text, "---\n")
	if !found {
		// Tolerate trailing whitespace on the opening delimiter line.
		nl := strings.Index(text, "\n")
		if nl < 0 || strings.TrimRight(text[:nl], " \t") != "---" {
			return "", text, false
		}
		rest = text[nl+1:]
	}

	lines := strings.Split(rest, "\n")
	for i, line := range lines {
		if strings.TrimRight(line, " \t") == "---" {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n"), true
		}
	}
	return "", text, false
}

// coerceValue applies the value coercion rules as an ordered pipeline:
// one layer of matching quotes is stripped first, then the stripped value
// runs through list syntax, literal null and full-string number before
// falling back to plain string. A quoted scalar therefore coerces the
// same as its bare form ("1" is the number 1).
func coerceValue(s string) Value {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = s[1 : len(s)-1]
		}
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner := s[1 : len(s)-1]
		var list []string
		if strings.TrimSpace(inner) != "" {
			for _, elem := range strings.Split(inner, ",") {
				list = append(list, strings.Trim(strings.TrimSpace(elem), `"'`))
			}
		}
		return Value{Kind: ValueList, List: list}
	}

	if s == "null" {
		return Value{Kind: ValueNull}
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil && s != "" {
		return Value{Kind: ValueNumber, Number: n}
	}

	return Value{Kind: ValueString, String: s}
}
