// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"fmt"
	"io"

	"github.com/pdiddy/bookfinder/internal/finder"
)

// Field names and the control id a book form must provide.
const (
	FieldAuthor      = "author"
	FieldTitle       = "title"
	FieldDescription = "description"
	ControlFind      = "find"
)

// NewBookForm returns an empty form with the book fields and the find control.
func NewBookForm() *Form {
	f := New(FieldAuthor, FieldTitle, FieldDescription)
	f.AddControl(ControlFind)
	return f
}

// Bind attaches the book lookup to the form's find control. Each click reads
// author and title as they are at that moment, looks them up with fd, and
// writes the result back into the form.
func Bind(f *Form, fd *finder.Finder) error {
	for _, name := range []string{FieldAuthor, FieldTitle, FieldDescription} {
		if !f.HasField(name) {
			return fmt.Errorf("binding book finder: %w: %q", ErrNoField, name)
		}
	}
	if err := f.OnClick(ControlFind, func() error { return Submit(f, fd) }); err != nil {
		return fmt.Errorf("binding book finder: %w", err)
	}
	return nil
}

// Submit runs one lookup against the current form contents and applies it.
func Submit(f *Form, fd *finder.Finder) error {
	author, err := f.Value(FieldAuthor)
	if err != nil {
		return err
	}
	title, err := f.Value(FieldTitle)
	if err != nil {
		return err
	}
	return Apply(f, fd.Find(finder.Query{Author: author, Title: title}))
}

// Apply writes r into the form. A match overwrites all three fields; no
// match leaves author and title alone and sets description to the
// not-found sentinel.
func Apply(f *Form, r finder.Result) error {
	b, ok := r.Found()
	if !ok {
		return f.SetValue(FieldDescription, finder.NotFoundText)
	}
	if err := f.SetValue(FieldAuthor, b.Author); err != nil {
		return err
	}
	if err := f.SetValue(FieldTitle, b.Title); err != nil {
		return err
	}
	return f.SetValue(FieldDescription, b.Description)
}

// Print writes the book fields of f to w, one per line.
func Print(w io.Writer, f *Form) error {
	for _, name := range []string{FieldAuthor, FieldTitle, FieldDescription} {
		v, err := f.Value(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-12s %s\n", name+":", v)
	}
	return nil
}
