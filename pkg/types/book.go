// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for bookfinder.
package types

// BookRecord is one catalog entry. Records carry no identity of their own;
// lookups compare Author and Title by value.
type BookRecord struct {
	// Author is the author's name as it should appear in the form.
	Author string `json:"author" yaml:"author" validate:"required"`

	// Title is the book title as it should appear in the form.
	Title string `json:"title" yaml:"title" validate:"required"`

	// Description is free-form text shown when the record is selected.
	Description string `json:"description" yaml:"description"`
}
