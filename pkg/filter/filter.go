package filter

import (
	"strings"

	"github.com/Toluwaa-o/string-analyzer/pkg/store"
)

// Criteria is a set of optional predicates combined with logical AND.
// Nil pointer fields and the empty ContainsCharacter are unset and match
// everything.
type Criteria struct {
	// IsPalindrome matches records whose palindrome property equals it.
	IsPalindrome *bool

	// MinLength matches records at least this long. When
	// MinLengthExclusive is set (natural-language path) the comparison
	// is strictly greater instead.
	MinLength *int

	// MinLengthExclusive switches MinLength from >= to >. Only the
	// natural-language interpreter sets this.
	MinLengthExclusive bool

	// MaxLength matches records at most this long.
	MaxLength *int

	// WordCount matches records with exactly this many words.
	WordCount *int

	// ContainsCharacter matches records whose original untrimmed value
	// contains this character. Empty means unset.
	ContainsCharacter string
}

// IsEmpty reports whether no predicate is set.
func (c Criteria) IsEmpty() bool {
	return c.IsPalindrome == nil &&
		c.MinLength == nil &&
		c.MaxLength == nil &&
		c.WordCount == nil &&
		c.ContainsCharacter == ""
}

// Matches reports whether the record satisfies every set predicate.
// Length and word-count predicates test the trimmed-value properties;
// ContainsCharacter tests the untrimmed original value, so the two can
// disagree about surrounding whitespace.
func (c Criteria) Matches(rec *store.Record) bool {
	p := rec.Properties

	if c.IsPalindrome != nil && p.IsPalindrome != *c.IsPalindrome {
		return false
	}
	if c.MinLength != nil {
		if c.MinLengthExclusive {
			if p.Length <= *c.MinLength {
				return false
			}
		} else if p.Length < *c.MinLength {
			return false
		}
	}
	if c.MaxLength != nil && p.Length > *c.MaxLength {
		return false
	}
	if c.WordCount != nil && p.WordCount != *c.WordCount {
		return false
	}
	if c.ContainsCharacter != "" && !strings.Contains(rec.Value, c.ContainsCharacter) {
		return false
	}
	return true
}

// Apply returns the records matching the criteria, preserving input
// order. The result is never nil, so an empty match serializes as a JSON
// array rather than null.
func Apply(records []*store.Record, c Criteria) []*store.Record {
	matched := make([]*store.Record, 0, len(records))
	for _, rec := range records {
		if c.Matches(rec) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Fields returns the set predicates as a JSON-ready map, keyed by their
// wire names. Used to echo filters back in list and query responses.
// MinLength echoes the stored value, which on the natural-language path
// is already incremented.
func (c Criteria) Fields() map[string]any {
	fields := make(map[string]any)
	if c.IsPalindrome != nil {
		fields["is_palindrome"] = *c.IsPalindrome
	}
	if c.MinLength != nil {
		fields["min_length"] = *c.MinLength
	}
	if c.MaxLength != nil {
		fields["max_length"] = *c.MaxLength
	}
	if c.WordCount != nil {
		fields["word_count"] = *c.WordCount
	}
	if c.ContainsCharacter != "" {
		fields["contains_character"] = c.ContainsCharacter
	}
	return fields
}
