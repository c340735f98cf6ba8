package syllabus

import (
	"errors"
	"sync"
)

// ErrEmptyStore is returned by Current when no syllabus has been accepted.
var ErrEmptyStore = errors.New("syllabus store is empty")

// Store holds the authoritative syllabus for one session plus its
// revision history. Every change is a full-document replace gated by
// Validate — there is deliberately no stage-level partial update, so a
// half-applied edit can never become current.
type Store struct {
	mu        sync.Mutex
	revisions []*Syllabus // accepted documents, most recent last
}

// NewStore creates a store seeded with an initial syllabus.
// The initial document goes through the same validation gate as replacements.
func NewStore(initial *Syllabus) (*Store, error) {
	s := &Store{}
	if err := s.Replace(initial); err != nil {
		return nil, err
	}
	return s, nil
}

// Replace atomically swaps in a new syllabus. On validation failure the
// prior syllabus remains current and the validator's error is returned.
func (s *Store) Replace(next *Syllabus) error {
	if err := Check(next); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revisions = append(s.revisions, next.Clone())
	return nil
}

// Current returns a copy of the authoritative syllabus.
func (s *Store) Current() (*Syllabus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.revisions) == 0 {
		return nil, ErrEmptyStore
	}
	return s.revisions[len(s.revisions)-1].Clone(), nil
}

// History returns copies of every accepted syllabus, most recent last.
func (s *Store) History() []*Syllabus {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Syllabus, len(s.revisions))
	for i, r := range s.revisions {
		out[i] = r.Clone()
	}
	return out
}

// Revision returns how many documents have been accepted so far.
func (s *Store) Revision() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.revisions)
}
