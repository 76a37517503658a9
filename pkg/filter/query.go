package filter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// UnparsableQueryError is returned by Interpret when no heuristic
// produced a predicate.
type UnparsableQueryError struct {
	Query string
}

func (e *UnparsableQueryError) Error() string {
	return fmt.Sprintf("unable to parse natural language query %q", e.Query)
}

// Interpret translates a free-text query into filter criteria using fixed
// case-insensitive substring heuristics:
//
//  1. "palindromic" or "palindrome" sets is_palindrome = true.
//  2. "single word" or "one word" sets word_count = 1.
//  3. "longer than" reads the digits after the phrase as N and sets
//     min_length = N+1 with strict comparison. No digits: rule skipped.
//  4. "containing the letter" takes the first character of the next
//     token as contains_character. Nothing follows: rule skipped.
//  5. Only when rule 4's phrase is absent, "containing the" together
//     with "vowel" sets contains_character = "a".
//
// Rules fail silently and independently; only a query that produces no
// predicate at all yields an UnparsableQueryError. The heuristics are
// intentionally brittle: their order, exclusivity, and silent failures
// are observable API behavior.
func Interpret(query string) (Criteria, error) {
	q := strings.ToLower(query)
	var c Criteria

	if strings.Contains(q, "palindromic") || strings.Contains(q, "palindrome") {
		c.IsPalindrome = boolPtr(true)
	}

	if strings.Contains(q, "single word") || strings.Contains(q, "one word") {
		c.WordCount = intPtr(1)
	}

	if rest, ok := after(q, "longer than"); ok {
		if n, ok := extractNumber(rest); ok {
			c.MinLength = intPtr(n + 1)
			c.MinLengthExclusive = true
		}
	}

	if rest, ok := after(q, "containing the letter"); ok {
		if char, ok := firstCharacter(rest); ok {
			c.ContainsCharacter = char
		}
	} else if strings.Contains(q, "containing the") && strings.Contains(q, "vowel") {
		c.ContainsCharacter = "a"
	}

	if c.IsEmpty() {
		return Criteria{}, &UnparsableQueryError{Query: query}
	}
	return c, nil
}

// after returns the substring following the first occurrence of phrase.
func after(s, phrase string) (string, bool) {
	idx := strings.Index(s, phrase)
	if idx < 0 {
		return "", false
	}
	return s[idx+len(phrase):], true
}

// extractNumber collects every digit character in s and parses the
// concatenation as an unsigned integer.
func extractNumber(s string) (int, bool) {
	var digits strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// firstCharacter returns the first character of the first
// whitespace-delimited token in s.
func firstCharacter(s string) (string, bool) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return "", false
	}
	for _, r := range tokens[0] {
		return string(r), true
	}
	return "", false
}

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }
