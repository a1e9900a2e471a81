// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the fixed, ordered list of book records that the
// finder searches. A Catalog is built once at startup and never changes:
// callers receive copies of its records, and record order decides which
// record wins when a query matches more than one.
package catalog

import (
	"errors"
	"fmt"
	"iter"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// ErrEmpty is returned when a catalog would contain no records.
var ErrEmpty = errors.New("catalog has no books")

// Catalog is an immutable ordered sequence of book records.
type Catalog struct {
	books []types.BookRecord
}

// New validates books and returns a catalog holding a private copy of them.
func New(books []types.BookRecord) (*Catalog, error) {
	if len(books) == 0 {
		return nil, ErrEmpty
	}
	if err := validateBooks(books); err != nil {
		return nil, err
	}
	owned := make([]types.BookRecord, len(books))
	copy(owned, books)
	return &Catalog{books: owned}, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Len reports the number of records.
func (c *Catalog) Len() int {
	return len(c.books)
}

// At returns the record at position i in catalog order.
func (c *Catalog) At(i int) (types.BookRecord, error) {
	if i < 0 || i >= len(c.books) {
		return types.BookRecord{}, fmt.Errorf("catalog index %d out of range [0,%d)", i, len(c.books))
	}
	return c.books[i], nil
}

// Books returns a copy of the records in catalog order.
func (c *Catalog) Books() []types.BookRecord {
	out := make([]types.BookRecord, len(c.books))
	copy(out, c.books)
	return out
}

// All yields each record with its position, in catalog order.
func (c *Catalog) All() iter.Seq2[int, types.BookRecord] {
	return func(yield func(int, types.BookRecord) bool) {
		for i, b := range c.books {
			if !yield(i, b) {
				return
			}
		}
	}
}
