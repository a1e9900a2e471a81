// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package finder looks up book records by author or title.
//
// A lookup scans the catalog in order and returns the first record whose
// author equals the query author or whose title equals the query title.
// Comparison is exact: no case folding, trimming, or substring matching.
// Finder does not touch any form; callers apply the Result themselves.
package finder

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/bookfinder/internal/catalog"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// NotFoundText is the sentinel written to a form's description field when
// no record matches.
const NotFoundText = "Book Not Found"

// ErrNotFound is returned by Lookup when no record matches.
var ErrNotFound = errors.New(NotFoundText)

// Query is the author and title read from a form at invocation time.
type Query struct {
	Author string
	Title  string
}

// Result is either a matched record or not-found. The zero Result is not-found.
type Result struct {
	book  types.BookRecord
	found bool
}

// Found returns the matched record and true, or a zero record and false.
func (r Result) Found() (types.BookRecord, bool) {
	return r.book, r.found
}

// Finder searches one catalog.
type Finder struct {
	cat *catalog.Catalog
	log logrus.FieldLogger
}

// Option configures a Finder.
type Option func(*Finder)

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(f *Finder) { f.log = l }
}

// New returns a Finder over cat.
func New(cat *catalog.Catalog, opts ...Option) *Finder {
	f := &Finder{cat: cat, log: logrus.StandardLogger()}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Find returns the first record in catalog order matching q.Author or q.Title.
func (f *Finder) Find(q Query) Result {
	for i, b := range f.cat.All() {
		if b.Author == q.Author || b.Title == q.Title {
			f.log.WithFields(logrus.Fields{
				"author":   q.Author,
				"title":    q.Title,
				"position": i,
			}).Debug("book found")
			return Result{book: b, found: true}
		}
	}
	f.log.WithFields(logrus.Fields{
		"author": q.Author,
		"title":  q.Title,
	}).Debug("book not found")
	return Result{}
}

// Lookup is Find for callers that prefer an error. It returns ErrNotFound
// when nothing matches.
func (f *Finder) Lookup(q Query) (types.BookRecord, error) {
	b, ok := f.Find(q).Found()
	if !ok {
		return types.BookRecord{}, ErrNotFound
	}
	return b, nil
}
