// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shell

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookfinder/internal/catalog"
	"github.com/pdiddy/bookfinder/internal/form"
)

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	var out bytes.Buffer
	s, err := New(catalog.Default(), &out, log)
	require.NoError(t, err)
	return s, &out
}

func run(t *testing.T, s *Shell, lines ...string) {
	t.Helper()
	for _, l := range lines {
		quit, err := s.Exec(l)
		require.NoError(t, err, "line %q", l)
		require.False(t, quit, "line %q", l)
	}
}

func TestExecFindByAuthor(t *testing.T) {
	s, out := newTestShell(t)
	run(t, s, "author Thomas Mann", "find")

	title, err := s.Form().Value(form.FieldTitle)
	require.NoError(t, err)
	assert.Equal(t, "Death in Venice", title)
	assert.Contains(t, out.String(), "title:       Death in Venice")
}

func TestExecFindNotFound(t *testing.T) {
	s, out := newTestShell(t)
	run(t, s, "author Nobody", "title Nothing", "find")

	assert.Contains(t, out.String(), "author:      Nobody\n")
	assert.Contains(t, out.String(), "title:       Nothing\n")
	assert.Contains(t, out.String(), "description: Book Not Found\n")
}

func TestExecKeepsInnerSpaces(t *testing.T) {
	s, _ := newTestShell(t)
	run(t, s, "title   A room with a view  ")

	title, err := s.Form().Value(form.FieldTitle)
	require.NoError(t, err)
	assert.Equal(t, "A room with a view", title)
}

func TestExecClear(t *testing.T) {
	s, _ := newTestShell(t)
	run(t, s, "author Isabel Allende", "find", "clear")

	for _, name := range s.Form().Fields() {
		v, err := s.Form().Value(name)
		require.NoError(t, err)
		assert.Empty(t, v, name)
	}
}

func TestExecList(t *testing.T) {
	s, out := newTestShell(t)
	run(t, s, "list")
	assert.Contains(t, out.String(), "1. Thomas Mann / Death in Venice\n")
	assert.Contains(t, out.String(), "5. Isabel Allende / Of love and shadows\n")
}

func TestExecHelp(t *testing.T) {
	s, out := newTestShell(t)
	run(t, s, "help")
	assert.Contains(t, out.String(), "find ")
	assert.Contains(t, out.String(), "quit | exit")
}

func TestExecQuit(t *testing.T) {
	s, _ := newTestShell(t)
	for _, cmd := range []string{"quit", "exit"} {
		quit, err := s.Exec(cmd)
		require.NoError(t, err)
		assert.True(t, quit)
	}
}

func TestExecUnknown(t *testing.T) {
	s, _ := newTestShell(t)
	_, err := s.Exec("search stuff")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"search"`)
}

func TestComplete(t *testing.T) {
	s, _ := newTestShell(t)

	assert.Equal(t, []string{"find"}, s.complete("fi"))
	assert.Equal(t, []string{"author Isabel Allende"}, s.complete("author Is"))
	assert.Equal(t, []string{"title The house of spirits"}, s.complete("title The"))
	assert.Nil(t, s.complete("show x"))
}
