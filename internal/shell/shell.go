// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shell hosts a book form in an interactive terminal session. The
// user fills in author and title, then runs find to look the book up.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/bookfinder/internal/catalog"
	"github.com/pdiddy/bookfinder/internal/finder"
	"github.com/pdiddy/bookfinder/internal/form"
)

const prompt = "bookfinder> "

var commandHelp = map[string]string{
	"author": "author <text>   set the author field",
	"title":  "title <text>    set the title field",
	"find":   "find            look up the book and fill in the form",
	"show":   "show            print the form",
	"clear":  "clear           empty every field",
	"list":   "list            print the catalog",
	"help":   "help            print this help",
	"quit":   "quit | exit     leave the shell",
}

// Shell is one interactive session over a bound book form.
type Shell struct {
	form *form.Form
	cat  *catalog.Catalog
	out  io.Writer
	log  logrus.FieldLogger
}

// New creates a book form bound to a finder over cat.
func New(cat *catalog.Catalog, out io.Writer, log logrus.FieldLogger) (*Shell, error) {
	f := form.NewBookForm()
	if err := form.Bind(f, finder.New(cat, finder.WithLogger(log))); err != nil {
		return nil, err
	}
	return &Shell{form: f, cat: cat, out: out, log: log}, nil
}

// Form returns the form the shell edits.
func (s *Shell) Form() *form.Form {
	return s.form
}

// Exec runs one command line. It reports quit=true when the session should end.
func (s *Shell) Exec(line string) (quit bool, err error) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "":
		return false, nil
	case "author":
		return false, s.form.SetValue(form.FieldAuthor, arg)
	case "title":
		return false, s.form.SetValue(form.FieldTitle, arg)
	case "find":
		if err := s.form.Click(form.ControlFind); err != nil {
			return false, err
		}
		return false, s.show()
	case "show":
		return false, s.show()
	case "clear":
		s.form.Reset()
		return false, nil
	case "list":
		s.list()
		return false, nil
	case "help":
		s.help()
		return false, nil
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}
}

func (s *Shell) show() error {
	return form.Print(s.out, s.form)
}

func (s *Shell) list() {
	for i, b := range s.cat.All() {
		fmt.Fprintf(s.out, "%d. %s / %s\n", i+1, b.Author, b.Title)
	}
}

func (s *Shell) help() {
	for _, name := range commandNames() {
		fmt.Fprintln(s.out, commandHelp[name])
	}
}

func commandNames() []string {
	names := make([]string, 0, len(commandHelp))
	for name := range commandHelp {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// complete offers command names, then catalog authors or titles.
func (s *Shell) complete(line string) []string {
	cmd, arg, hasArg := strings.Cut(line, " ")
	var out []string
	if !hasArg {
		for _, name := range append(commandNames(), "exit") {
			if strings.HasPrefix(name, cmd) {
				out = append(out, name)
			}
		}
		return out
	}

	seen := make(map[string]bool)
	for _, b := range s.cat.All() {
		var v string
		switch cmd {
		case "author":
			v = b.Author
		case "title":
			v = b.Title
		default:
			return nil
		}
		if !seen[v] && strings.HasPrefix(v, arg) {
			seen[v] = true
			out = append(out, cmd+" "+v)
		}
	}
	return out
}

// Run reads commands from the terminal until quit, EOF, or Ctrl-C. History
// is loaded from and saved to historyFile when it is non-empty.
func (s *Shell) Run(historyFile string) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(s.complete)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			if _, err := line.ReadHistory(f); err != nil {
				s.log.WithError(err).Warn("could not read shell history")
			}
			f.Close()
		}
	}

	fmt.Fprintln(s.out, "Book finder. Type help for commands.")
	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		quit, err := s.Exec(input)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			break
		}
	}

	if historyFile != "" {
		f, err := os.Create(historyFile)
		if err != nil {
			return fmt.Errorf("writing shell history: %w", err)
		}
		defer f.Close()
		if _, err := line.WriteHistory(f); err != nil {
			return fmt.Errorf("writing shell history: %w", err)
		}
	}
	return nil
}
