package carnet

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultSortKey is assigned to identifiers lacking a numeric prefix.
// "999" folds past every real prefix, so unnumbered documents sort last
// within their sibling group.
const DefaultSortKey = "999"

var sortKeyRe = regexp.MustCompile(`^(\d+(?:-\d+)*)-`)

// ExtractSortKey returns the leading run of dash-separated digit groups
// from a document identifier (e.g., "21-01" from "21-01-openai-api.md").
// Identifiers without such a prefix return DefaultSortKey.
func ExtractSortKey(identifier string) string {
	if m := sortKeyRe.FindStringSubmatch(identifier); m != nil {
		return m[1]
	}
	return DefaultSortKey
}

// SortKeyToNumber folds a sort key into a single comparable integer using
// descending positional weight: the first segment weighs 1,000,000 and
// each deeper segment a thousandth of the previous. A parent key therefore
// sorts strictly before its children ("21" < "21-01" < "21-02" < "22")
// and siblings compare numerically, not lexically. Unparsable segments
// count as 0.
func SortKeyToNumber(sortKey string) int {
	result := 0
	multiplier := 1000000
	for _, part := range strings.Split(sortKey, "-") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			n = 0
		}
		result += n * multiplier
		multiplier /= 1000
	}
	return result
}

// SlugFromIdentifier derives the stable lookup key from a document
// identifier: the extension and any directory prefix are stripped.
func SlugFromIdentifier(identifier string) string {
	slug := strings.TrimSuffix(identifier, ".md")
	if i := strings.LastIndex(slug, "/"); i >= 0 {
		slug = slug[i+1:]
	}
	return slug
}
