// Package match provides stateless string-matching helpers: subsequence
// ("fuzzy") matching, normalized similarity scoring, regex search,
// case-insensitive substring search and whole-word matching.
//
// Invalid regular expressions are absorbed rather than surfaced; callers
// never need to pre-validate patterns.
package match

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FuzzyMatch reports whether pattern is a subsequence of text: every
// pattern rune appears in text in order, not necessarily contiguously.
// The empty pattern matches anything; a non-empty pattern never matches
// empty text.
func FuzzyMatch(pattern, text string) bool {
	if pattern == "" {
		return true
	}
	patternRunes := []rune(pattern)
	next := 0
	for _, r := range text {
		if r == patternRunes[next] {
			next++
			if next == len(patternRunes) {
				return true
			}
		}
	}
	return false
}

// Similarity returns a normalized similarity in [0, 1] based on
// Levenshtein distance over runes. Identical strings (including two
// empties) score 1.0; one empty against one non-empty scores 0.0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	lenA := utf8.RuneCountInString(a)
	lenB := utf8.RuneCountInString(b)
	if lenA == 0 || lenB == 0 {
		return 0.0
	}
	longest := lenA
	if lenB > longest {
		longest = lenB
	}
	return 1.0 - float64(Levenshtein(a, b))/float64(longest)
}

// Levenshtein returns the edit distance between a and b in runes.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// RegexMatch compiles pattern and tests for a match anywhere in text.
// An invalid pattern yields false.
func RegexMatch(pattern, text string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// FindMatches returns every non-overlapping substring of text matched by
// pattern. An invalid pattern yields an empty result.
func FindMatches(pattern, text string) []string {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}
	return re.FindAllString(text, -1)
}

// ContainsIgnoreCase reports whether needle occurs in haystack ignoring
// case. An empty needle matches any haystack, including the empty one.
func ContainsIgnoreCase(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// WordMatch reports whether word occurs in text as a whole word, bounded
// by non-alphanumeric runes or the string edges. Substrings of larger
// tokens do not match.
func WordMatch(word, text string) bool {
	if word == "" {
		return false
	}
	for offset := 0; offset+len(word) <= len(text); {
		rel := strings.Index(text[offset:], word)
		if rel < 0 {
			return false
		}
		start := offset + rel
		end := start + len(word)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		offset = start + 1
	}
	return false
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:idx])
	return !isWordRune(r)
}

func boundaryAfter(text string, idx int) bool {
	if idx >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[idx:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
