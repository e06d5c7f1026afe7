package domain

import "strings"

// DeriveCategories extracts the hashtag categories of a poll question.
//
// The question is split on whitespace. A token is a category marker if it
// contains '#' and does not end with '#'; the category is the part after
// the first '#'. Results keep first-seen order and are deduplicated
// case-sensitively. A question without markers yields an empty, non-nil
// slice, which is the canonical stored form.
func DeriveCategories(question string) []string {
	categories := []string{}
	seen := make(map[string]struct{})

	for _, token := range strings.Fields(question) {
		idx := strings.IndexByte(token, '#')
		if idx < 0 || strings.HasSuffix(token, "#") {
			continue
		}
		label := token[idx+1:]
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		categories = append(categories, label)
	}

	return categories
}

// MatchesCategoryPrefix reports whether any category starts with any of
// the given prefixes. An empty prefix list matches everything.
func MatchesCategoryPrefix(categories, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, c := range categories {
		for _, p := range prefixes {
			if strings.HasPrefix(c, p) {
				return true
			}
		}
	}
	return false
}
