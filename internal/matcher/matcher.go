// Package matcher implements keyword matching against item text.
package matcher

import "strings"

// Keywords is the configured keyword list. Matching is case-insensitive and
// results are reported in list order, so the order here is the display order.
type Keywords []string

// Match returns the keywords whose case-folded form appears as a substring of
// the item's title or body. Duplicates in the list are reported once. An
// empty keyword list matches nothing.
func (k Keywords) Match(title, body string) []string {
	if len(k) == 0 {
		return nil
	}

	text := strings.ToLower(title + " " + body)

	var matched []string
	found := make(map[string]struct{})
	for _, kw := range k {
		folded := strings.ToLower(kw)
		if _, ok := found[folded]; ok {
			continue
		}
		if strings.Contains(text, folded) {
			matched = append(matched, kw)
			found[folded] = struct{}{}
		}
	}
	return matched
}
