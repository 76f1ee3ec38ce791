package match

import (
	"strings"
	"unicode"
)

// Scoring constants for ranked fuzzy matching. Matches at token starts
// and contiguous runs outrank scattered hits.
const (
	firstCharMatchBonus            = 15
	adjacentMatchBonus             = 10
	separatorMatchBonus            = 12
	camelCaseMatchBonus            = 12
	unmatchedLeadingCharPenalty    = -3
	maxUnmatchedLeadingCharPenalty = -9
)

// Score rates how well pattern fuzzy-matches candidate, case
// insensitively. The boolean is false when pattern is not a subsequence
// of candidate; higher scores indicate tighter matches. Used by ranking
// consumers on top of the boolean FuzzyMatch contract.
func Score(pattern, candidate string) (int, bool) {
	if pattern == "" {
		return 0, true
	}
	patternRunes := []rune(strings.ToLower(pattern))
	candidateRunes := []rune(candidate)

	score := 0
	next := 0
	adjacentRun := 0
	lastMatched := -2
	var prev rune

	for i, r := range candidateRunes {
		folded := unicode.ToLower(r)
		if folded == patternRunes[next] {
			bonus := 0
			switch {
			case i == 0:
				bonus += firstCharMatchBonus
			case isSeparator(prev):
				bonus += separatorMatchBonus
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				bonus += camelCaseMatchBonus
			}
			if i == lastMatched+1 {
				adjacentRun += adjacentMatchBonus
				bonus += adjacentRun
			} else {
				adjacentRun = 0
			}
			if next == 0 && i > 0 {
				penalty := i * unmatchedLeadingCharPenalty
				if penalty < maxUnmatchedLeadingCharPenalty {
					penalty = maxUnmatchedLeadingCharPenalty
				}
				bonus += penalty
			}
			score += bonus
			lastMatched = i
			next++
			if next == len(patternRunes) {
				// shorter candidates win ties
				return score - (len(candidateRunes) - len(patternRunes)), true
			}
		}
		prev = r
	}
	return 0, false
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.' || r == '/'
}
