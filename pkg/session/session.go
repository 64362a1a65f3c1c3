// Package session runs the interactive prompt loop: read a course code,
// look it up, print the record or a corrective message, repeat.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"courselookup/pkg/catalog"
	"courselookup/pkg/tui"

	"go.uber.org/zap"
)

const (
	Banner      = "Course Information Lookup (press ENTER to quit)"
	Prompt      = "Enter a course number (e.g., CSC101, NET110): "
	Farewell    = "Goodbye!"
	Interrupted = "Interrupted. Exiting..."
)

// Session is one interactive run against a catalog.
type Session struct {
	cat   *catalog.Catalog
	in    io.Reader
	out   io.Writer
	theme tui.Theme
	log   *zap.Logger
}

// Option customises a Session.
type Option func(*Session)

// WithTheme sets the styles used for the banner, farewell and errors.
func WithTheme(theme tui.Theme) Option {
	return func(s *Session) { s.theme = theme }
}

// WithLogger sets the logger used for lookup tracing.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) { s.log = log }
}

// New returns a session reading lines from in and writing to out.
func New(cat *catalog.Catalog, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		cat:   cat,
		in:    in,
		out:   out,
		theme: tui.PlainTheme(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type readResult struct {
	line string
	err  error
}

// Run drives the loop until an empty line, end of input, or ctx is
// cancelled. The last two are normal endings and return nil; only a
// failing reader produces an error.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, s.theme.Accent(Banner))
	fmt.Fprintln(s.out)

	done := make(chan struct{})
	defer close(done)
	lines := readLines(s.in, done)

	for {
		fmt.Fprint(s.out, Prompt)

		select {
		case <-ctx.Done():
			s.log.Debug("session interrupted", zap.Error(ctx.Err()))
			fmt.Fprintln(s.out, "\n"+s.theme.Accent(Interrupted))
			return nil

		case res, ok := <-lines:
			if !ok {
				s.log.Debug("end of input")
				fmt.Fprintln(s.out, s.theme.Accent(Farewell))
				return nil
			}
			if res.err != nil {
				return fmt.Errorf("failed to read input: %w", res.err)
			}
			if strings.TrimSpace(res.line) == "" {
				fmt.Fprintln(s.out, s.theme.Accent(Farewell))
				return nil
			}
			if err := s.handle(res.line); err != nil {
				return err
			}
		}
	}
}

// handle resolves one line. A miss is reported to the user and is not an error.
func (s *Session) handle(line string) error {
	course, err := s.cat.Lookup(line)

	var nf *catalog.NotFoundError
	switch {
	case err == nil:
		s.log.Debug("course resolved", zap.String("code", course.Code))
		fmt.Fprintln(s.out, catalog.Render(course))
	case errors.As(err, &nf):
		s.log.Debug("course not found", zap.String("input", nf.Input))
		fmt.Fprintln(s.out, s.theme.Error(s.cat.NotFoundMessage(nf)))
		fmt.Fprintln(s.out)
	default:
		return fmt.Errorf("lookup %q: %w", line, err)
	}
	return nil
}

// readLines reads r on its own goroutine so a blocked read never keeps
// Run from noticing cancellation. Lines have no length limit. The
// channel is closed at end of input.
func readLines(r io.Reader, done <-chan struct{}) <-chan readResult {
	ch := make(chan readResult)

	send := func(res readResult) bool {
		select {
		case ch <- res:
			return true
		case <-done:
			return false
		}
	}

	go func() {
		defer close(ch)

		reader := bufio.NewReader(r)
		for {
			line, err := reader.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				send(readResult{err: err})
				return
			}
			if line != "" && !send(readResult{line: trimNewline(line)}) {
				return
			}
			if err != nil {
				return
			}
		}
	}()

	return ch
}

func trimNewline(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
