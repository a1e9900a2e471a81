// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package form models the hosting form the book finder writes into: named
// plain-text fields and named clickable controls. The form is owned by one
// caller and is not safe for concurrent use.
package form

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoField is returned when a named field does not exist.
	ErrNoField = errors.New("no such field")

	// ErrNoControl is returned when a named control does not exist.
	ErrNoControl = errors.New("no such control")
)

// Handler runs when a control is clicked.
type Handler func() error

// Form is a set of text fields and controls.
type Form struct {
	fields   map[string]string
	controls map[string][]Handler
}

// New returns a form with the given empty fields and no controls.
func New(fields ...string) *Form {
	f := &Form{
		fields:   make(map[string]string, len(fields)),
		controls: make(map[string][]Handler),
	}
	for _, name := range fields {
		f.fields[name] = ""
	}
	return f
}

// AddControl adds a clickable control with no handlers.
func (f *Form) AddControl(id string) {
	if _, ok := f.controls[id]; !ok {
		f.controls[id] = nil
	}
}

// HasField reports whether the form has the named field.
func (f *Form) HasField(name string) bool {
	_, ok := f.fields[name]
	return ok
}

// Fields returns the field names in sorted order.
func (f *Form) Fields() []string {
	names := make([]string, 0, len(f.fields))
	for name := range f.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Value returns the current text of the named field.
func (f *Form) Value(name string) (string, error) {
	v, ok := f.fields[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoField, name)
	}
	return v, nil
}

// SetValue replaces the text of the named field.
func (f *Form) SetValue(name, value string) error {
	if _, ok := f.fields[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNoField, name)
	}
	f.fields[name] = value
	return nil
}

// Reset clears every field.
func (f *Form) Reset() {
	for name := range f.fields {
		f.fields[name] = ""
	}
}

// OnClick attaches h to the control id. Handlers run in registration order.
func (f *Form) OnClick(id string, h Handler) error {
	hs, ok := f.controls[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoControl, id)
	}
	f.controls[id] = append(hs, h)
	return nil
}

// Click runs the handlers attached to control id, stopping at the first error.
func (f *Form) Click(id string) error {
	hs, ok := f.controls[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoControl, id)
	}
	for _, h := range hs {
		if err := h(); err != nil {
			return fmt.Errorf("control %q: %w", id, err)
		}
	}
	return nil
}
