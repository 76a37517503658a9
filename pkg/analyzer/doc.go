// Package analyzer computes derived properties of strings.
//
// Analyze is a pure function: given an input string it produces the
// character count, palindrome flag, unique character count, word count,
// SHA-256 content hash, and a character frequency map. All properties are
// computed from the input with leading and trailing whitespace removed;
// the untrimmed original is preserved by callers, not by this package.
//
// The content hash doubles as the record identity for the store, so two
// inputs that differ only in surrounding whitespace analyze to the same
// identity.
package analyzer
