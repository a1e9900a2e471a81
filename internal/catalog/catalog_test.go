// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookfinder/pkg/types"
)

func TestDefaultOrder(t *testing.T) {
	c := Default()
	require.Equal(t, 5, c.Len())

	want := []struct{ author, title string }{
		{"Thomas Mann", "Death in Venice"},
		{"James Joyce", "A portrait of the artist as a young man"},
		{"E. M. Forster", "A room with a view"},
		{"Isabel Allende", "The house of spirits"},
		{"Isabel Allende", "Of love and shadows"},
	}
	for i, w := range want {
		b, err := c.At(i)
		require.NoError(t, err)
		assert.Equal(t, w.author, b.Author, "author at %d", i)
		assert.Equal(t, w.title, b.Title, "title at %d", i)
		assert.NotEmpty(t, b.Description, "description at %d", i)
	}
}

func TestAtOutOfRange(t *testing.T) {
	c := Default()
	_, err := c.At(-1)
	assert.Error(t, err)
	_, err = c.At(c.Len())
	assert.Error(t, err)
}

func TestBooksReturnsCopy(t *testing.T) {
	c := Default()
	books := c.Books()
	books[0].Author = "Someone Else"

	first, err := c.At(0)
	require.NoError(t, err)
	assert.Equal(t, "Thomas Mann", first.Author)
}

func TestNewCopiesInput(t *testing.T) {
	in := []types.BookRecord{{Author: "A", Title: "T"}}
	c, err := New(in)
	require.NoError(t, err)

	in[0].Author = "changed"
	b, err := c.At(0)
	require.NoError(t, err)
	assert.Equal(t, "A", b.Author)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		books  []types.BookRecord
		errMsg string
	}{
		{"empty", nil, "no books"},
		{"missing author", []types.BookRecord{{Title: "T"}}, "book 1: author is required"},
		{"missing title", []types.BookRecord{{Author: "A", Title: "T"}, {Author: "B"}}, "book 2: title is required"},
		{"description optional", []types.BookRecord{{Author: "A", Title: "T"}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.books)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestAllStopsEarly(t *testing.T) {
	var seen []int
	for i := range Default().All() {
		seen = append(seen, i)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, seen)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		errMsg string
	}{
		{
			name: "valid",
			input: `books:
  - author: Thomas Mann
    title: Death in Venice
    description: A novella.
  - author: Isabel Allende
    title: The house of spirits
`,
			want: 2,
		},
		{
			name: "misspelled description key",
			input: `books:
  - author: Thomas Mann
    title: Death in Venice
    desciption: A novella.
`,
			errMsg: "desciption",
		},
		{
			name:   "empty document",
			input:  "",
			errMsg: "no books",
		},
		{
			name:   "empty list",
			input:  "books: []\n",
			errMsg: "no books",
		},
		{
			name: "blank title",
			input: `books:
  - author: Thomas Mann
    title: ""
`,
			errMsg: "title is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(strings.NewReader(tt.input))
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Len())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestYAMLExportLoadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().WriteYAML(&buf))

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Books(), c.Books())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().WriteJSON(&buf))

	var f File
	require.NoError(t, json.Unmarshal(buf.Bytes(), &f))
	require.Len(t, f.Books, 5)
	assert.Equal(t, "Of love and shadows", f.Books[4].Title)
	assert.Contains(t, buf.String(), `"description"`)
}
