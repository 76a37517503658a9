package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Properties holds the derived properties of an analyzed string.
// All counts are in Unicode code points, not bytes, and are computed
// from the trimmed value.
type Properties struct {
	// Length is the number of characters in the trimmed string.
	Length int `json:"length"`

	// IsPalindrome reports whether the string, after dropping every
	// non-alphanumeric character and lowercasing the rest, reads the
	// same forwards and backwards. The empty string is a palindrome.
	IsPalindrome bool `json:"is_palindrome"`

	// UniqueCharacters is the number of distinct characters in the
	// trimmed string. Case-sensitive; whitespace and punctuation count.
	UniqueCharacters int `json:"unique_characters"`

	// WordCount is the number of whitespace-delimited tokens.
	WordCount int `json:"word_count"`

	// SHA256Hash is the hex digest of SHA-256 over the trimmed string's
	// UTF-8 bytes. It is also the record identity in the store.
	SHA256Hash string `json:"sha256_hash"`

	// CharacterFrequencyMap maps each character of the trimmed string to
	// its occurrence count, keyed in first-occurrence order.
	CharacterFrequencyMap *FrequencyMap `json:"character_frequency_map"`
}

// Analyze computes all properties for the given string. The value is
// trimmed of leading and trailing whitespace before anything else; every
// property, including the hash, is derived from the trimmed value.
//
// Analyze has no error conditions and no side effects.
func Analyze(value string) Properties {
	trimmed := strings.TrimSpace(value)

	freq := NewFrequencyMap()
	unique := make(map[rune]struct{})
	for _, r := range trimmed {
		freq.Inc(string(r))
		unique[r] = struct{}{}
	}

	return Properties{
		Length:                utf8.RuneCountInString(trimmed),
		IsPalindrome:          isPalindrome(trimmed),
		UniqueCharacters:      len(unique),
		WordCount:             len(strings.Fields(trimmed)),
		SHA256Hash:            Hash(trimmed),
		CharacterFrequencyMap: freq,
	}
}

// isPalindrome normalizes the string by keeping only alphanumeric code
// points, lowercased, and compares the result with its reverse.
func isPalindrome(s string) bool {
	normalized := make([]rune, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			normalized = append(normalized, unicode.ToLower(r))
		}
	}

	for i, j := 0, len(normalized)-1; i < j; i, j = i+1, j-1 {
		if normalized[i] != normalized[j] {
			return false
		}
	}
	return true
}
