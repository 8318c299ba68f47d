package models

import "strings"

// SplitSpecialNeeds flattens special needs tags.
//
// Every entry is split on "," and the Arabic comma "،", each token is
// trimmed and empty tokens are dropped. Order is preserved.
func SplitSpecialNeeds(needs []string) []string {
	tags := make([]string, 0, len(needs))
	for _, n := range needs {
		for _, token := range strings.FieldsFunc(n, func(r rune) bool {
			return r == ',' || r == '،'
		}) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			tags = append(tags, token)
		}
	}

	return tags
}

// ScoreVulnerability returns the size tier of a family plus the number of
// special needs. Only the highest matching tier counts.
func ScoreVulnerability(familySize int, specialNeeds []string) int {
	score := 0
	switch {
	case familySize >= 7:
		score = 3
	case familySize >= 4:
		score = 2
	case familySize >= 1:
		score = 1
	}

	return score + len(SplitSpecialNeeds(specialNeeds))
}
