package services

import (
	"regexp"
	"strings"
)

// Characters with meaning in to_tsquery syntax.
var tsquerySpecialChars = regexp.MustCompile(`[()|&:*!]`)

// ParseSearchTerms cleans a free text search into whitespace separated terms.
// A search made only of special characters yields no terms.
func ParseSearchTerms(search string) []string {
	cleaned := strings.TrimSpace(tsquerySpecialChars.ReplaceAllString(search, " "))
	if cleaned == "" {
		return nil
	}
	return strings.Fields(cleaned)
}

// NormalizeTags trims and de-duplicates tag names, dropping empty ones. An
// empty result means no tag filter.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
