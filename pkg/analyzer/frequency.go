package analyzer

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FrequencyMap counts character occurrences while remembering the order in
// which characters were first seen. encoding/json sorts plain map keys, so
// the map carries its own key order and marshals to a JSON object whose
// keys appear in first-occurrence order.
type FrequencyMap struct {
	order  []string
	counts map[string]int
}

// NewFrequencyMap returns an empty frequency map.
func NewFrequencyMap() *FrequencyMap {
	return &FrequencyMap{counts: make(map[string]int)}
}

// Inc increments the count for the given character, registering it at the
// end of the key order on first occurrence.
func (m *FrequencyMap) Inc(char string) {
	if _, seen := m.counts[char]; !seen {
		m.order = append(m.order, char)
	}
	m.counts[char]++
}

// Count returns the occurrence count for the given character, or zero if
// the character was never seen.
func (m *FrequencyMap) Count(char string) int {
	return m.counts[char]
}

// Len returns the number of distinct characters.
func (m *FrequencyMap) Len() int {
	return len(m.counts)
}

// Keys returns the characters in first-occurrence order. The returned
// slice is a copy.
func (m *FrequencyMap) Keys() []string {
	keys := make([]string, len(m.order))
	copy(keys, m.order)
	return keys
}

// MarshalJSON encodes the map as a JSON object with keys in
// first-occurrence order.
func (m *FrequencyMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, char := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(char)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", m.counts[char])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the map, preserving the key
// order of the document.
func (m *FrequencyMap) UnmarshalJSON(data []byte) error {
	m.order = nil
	m.counts = make(map[string]int)

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("frequency map: expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("frequency map: expected string key, got %v", keyTok)
		}

		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("frequency map: value for %q: %w", key, err)
		}

		if _, seen := m.counts[key]; !seen {
			m.order = append(m.order, key)
		}
		m.counts[key] = count
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
