package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretPalindrome(t *testing.T) {
	for _, query := range []string{
		"Show me palindromic strings",
		"give me every palindrome you have",
		"PALINDROMES please",
	} {
		t.Run(query, func(t *testing.T) {
			c, err := Interpret(query)
			require.NoError(t, err)
			require.NotNil(t, c.IsPalindrome)
			assert.True(t, *c.IsPalindrome)
			assert.Equal(t, map[string]any{"is_palindrome": true}, c.Fields())
		})
	}
}

func TestInterpretSingleWord(t *testing.T) {
	for _, query := range []string{
		"single word strings only",
		"strings that are one word",
	} {
		t.Run(query, func(t *testing.T) {
			c, err := Interpret(query)
			require.NoError(t, err)
			require.NotNil(t, c.WordCount)
			assert.Equal(t, 1, *c.WordCount)
		})
	}
}

func TestInterpretLongerThan(t *testing.T) {
	c, err := Interpret("strings longer than 10 characters")
	require.NoError(t, err)

	// "longer than 10" stores 11 and compares strictly.
	require.NotNil(t, c.MinLength)
	assert.Equal(t, 11, *c.MinLength)
	assert.True(t, c.MinLengthExclusive)
}

func TestInterpretLongerThanCollectsAllDigits(t *testing.T) {
	// Every digit after the phrase is concatenated, including ones from
	// later words. Brittle, but observable behavior.
	c, err := Interpret("longer than 1 or 2")
	require.NoError(t, err)
	require.NotNil(t, c.MinLength)
	assert.Equal(t, 13, *c.MinLength)
}

func TestInterpretLongerThanWithoutNumber(t *testing.T) {
	// No digits after "longer than": the rule is skipped silently and,
	// with no other rule matching, the query is unparsable.
	_, err := Interpret("strings longer than average")

	var unparsable *UnparsableQueryError
	assert.ErrorAs(t, err, &unparsable)
}

func TestInterpretLongerThanSkippedButOtherRuleMatches(t *testing.T) {
	c, err := Interpret("palindromes longer than average")
	require.NoError(t, err)
	assert.Nil(t, c.MinLength)
	require.NotNil(t, c.IsPalindrome)
}

func TestInterpretContainingTheLetter(t *testing.T) {
	c, err := Interpret("strings containing the letter z")
	require.NoError(t, err)
	assert.Equal(t, "z", c.ContainsCharacter)
}

func TestInterpretContainingTheLetterFirstCharacterOfToken(t *testing.T) {
	// Only the first character of the first token counts.
	c, err := Interpret("containing the letter xyz please")
	require.NoError(t, err)
	assert.Equal(t, "x", c.ContainsCharacter)
}

func TestInterpretContainingTheLetterLowercased(t *testing.T) {
	// Matching is case-insensitive at parse time: the whole query is
	// lowercased before extraction.
	c, err := Interpret("containing the letter Q")
	require.NoError(t, err)
	assert.Equal(t, "q", c.ContainsCharacter)
}

func TestInterpretContainingTheLetterTrailingNothing(t *testing.T) {
	_, err := Interpret("strings containing the letter")

	var unparsable *UnparsableQueryError
	assert.ErrorAs(t, err, &unparsable)
}

func TestInterpretVowelFallback(t *testing.T) {
	c, err := Interpret("strings containing the first vowel")
	require.NoError(t, err)
	assert.Equal(t, "a", c.ContainsCharacter)
}

func TestInterpretLetterPhraseSuppressesVowelRule(t *testing.T) {
	// Rule 5 only applies when rule 4's phrase is absent, even if rule 4
	// extracted a different character.
	c, err := Interpret("containing the letter b which is not a vowel")
	require.NoError(t, err)
	assert.Equal(t, "b", c.ContainsCharacter)
}

func TestInterpretCombinedRules(t *testing.T) {
	c, err := Interpret("single word palindromes longer than 3")
	require.NoError(t, err)

	require.NotNil(t, c.IsPalindrome)
	require.NotNil(t, c.WordCount)
	require.NotNil(t, c.MinLength)
	assert.Equal(t, 4, *c.MinLength)
	assert.True(t, c.MinLengthExclusive)
}

func TestInterpretUnparsable(t *testing.T) {
	for _, query := range []string{
		"show me everything",
		"",
		"strings with many vowels", // "vowel" without "containing the"
	} {
		t.Run(query, func(t *testing.T) {
			_, err := Interpret(query)

			var unparsable *UnparsableQueryError
			require.ErrorAs(t, err, &unparsable)
			assert.Equal(t, query, unparsable.Query)
		})
	}
}
