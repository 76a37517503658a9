package store

import (
	"sync"
	"time"

	"github.com/Toluwaa-o/string-analyzer/pkg/analyzer"
)

// Record is one stored string together with its computed properties and
// creation timestamp. Records are immutable once created; the only
// mutation the store supports is deletion.
type Record struct {
	// ID is the content hash of the trimmed string. It always equals
	// Properties.SHA256Hash.
	ID string `json:"id"`

	// Value is the original input exactly as submitted, untrimmed.
	Value string `json:"value"`

	// Properties are computed from the trimmed value.
	Properties analyzer.Properties `json:"properties"`

	// CreatedAt is the UTC insertion timestamp, set once.
	CreatedAt time.Time `json:"created_at"`
}

// NewRecord builds a record for the given input string. The record ID is
// taken from the analyzed properties so the ID/hash invariant holds by
// construction.
func NewRecord(value string) *Record {
	props := analyzer.Analyze(value)
	return &Record{
		ID:         props.SHA256Hash,
		Value:      value,
		Properties: props,
		CreatedAt:  time.Now().UTC(),
	}
}

// Store is a process-wide in-memory record table. Construct one at
// startup with New and hand it to the HTTP handlers; there is no ambient
// singleton.
type Store struct {
	mu         sync.RWMutex
	records    map[string]*Record
	order      []string
	valueBytes int64
}

// New creates an empty store.
func New() *Store {
	return &Store{records: make(map[string]*Record)}
}

// Put inserts a record. It returns ErrConflict if a record with the same
// ID is already present.
func (s *Store) Put(rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[rec.ID]; exists {
		return ErrConflict
	}
	s.records[rec.ID] = rec
	s.order = append(s.order, rec.ID)
	s.valueBytes += int64(len(rec.Value))
	return nil
}

// Get returns the record for the given ID, or ErrNotFound.
func (s *Store) Get(id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

// Delete removes the record for the given ID. It returns ErrNotFound if
// no such record exists.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	s.valueBytes -= int64(len(rec.Value))
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns all current records in insertion order. The returned slice
// is a snapshot; the records themselves are shared and must be treated as
// read-only.
func (s *Store) List() []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// ValueBytes returns the total size in bytes of all stored values.
func (s *Store) ValueBytes() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.valueBytes
}
