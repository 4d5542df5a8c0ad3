package internal

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Store is an ordered, in-memory list of expense records.
// It is not safe for concurrent use.
type Store struct {
	records []Record
}

func NewStore() *Store {
	return &Store{}
}

// Add appends a new record and returns its position.
func (s *Store) Add(amount decimal.Decimal, category string, date time.Time) (int, error) {
	r, err := NewRecord(amount, category, date)
	if err != nil {
		return -1, err
	}
	s.records = append(s.records, r)
	return len(s.records) - 1, nil
}

// Delete removes the record at index and returns it.
func (s *Store) Delete(index int) (Record, error) {
	if err := s.checkIndex(index); err != nil {
		return Record{}, err
	}
	r := s.records[index]
	s.records = slices.Delete(s.records, index, index+1)
	return r, nil
}

// Get returns the record at index.
func (s *Store) Get(index int) (Record, error) {
	if err := s.checkIndex(index); err != nil {
		return Record{}, err
	}
	return s.records[index], nil
}

// All returns a copy of the records in insertion order.
func (s *Store) All() []Record {
	return slices.Clone(s.records)
}

func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.records) {
		return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, len(s.records))
	}
	return nil
}
