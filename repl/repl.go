// Package repl runs the read-parse-print loop over line-oriented input.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/pairtree/format"
	"github.com/dhamidi/pairtree/syntax"
)

const DefaultPrompt = "> "

var log = commonlog.GetLogger("pairtree.repl")

// Stats counts the lines a session has processed.
type Stats struct {
	Lines    int
	Failures int
}

type Option func(*Session)

// WithPrompt sets the prompt written before each line. An empty prompt
// disables prompting.
func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithFormat selects the encoder used for parsed trees (see format.Names).
func WithFormat(name string) Option {
	return func(s *Session) {
		s.format = name
	}
}

// Session reads one expression per line and writes back either the encoded
// tree or an error message. A malformed line never ends the session.
type Session struct {
	lines   *LineReader
	out     io.Writer
	prompt  string
	format  string
	stats   Stats
}

// NewSession returns a session reading from in and writing to out. It fails
// if the selected format is unknown.
func NewSession(in io.Reader, out io.Writer, opts ...Option) (*Session, error) {
	s := &Session{
		lines:   NewLineReader(in),
		out:     out,
		prompt:  DefaultPrompt,
		format:  "text",
	}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := format.NewEncoder(s.format, io.Discard); err != nil {
		return nil, err
	}
	return s, nil
}

// Eval parses a single line and returns its encoded tree.
func (s *Session) Eval(line string) (string, error) {
	line = strings.TrimSuffix(line, "\r")
	s.stats.Lines++

	tree, err := syntax.ParseString(line)
	if err != nil {
		s.stats.Failures++
		log.Debugf("line %d: %s", s.stats.Lines, err)
		return "", err
	}
	out, err := format.Marshal(s.format, tree)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return string(out), nil
}

// Run processes lines until input ends, ctx is cancelled, or writing fails.
// Cancellation is observed between lines.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			if _, err := io.WriteString(s.out, s.prompt); err != nil {
				return err
			}
		}
		line, err := s.lines.ReadLine()
		if err == io.EOF {
			break
		}

		var result string
		switch {
		case errors.Is(err, ErrLineTooLong):
			s.stats.Lines++
			s.stats.Failures++
			log.Warningf("line %d: %s", s.stats.Lines, err)
			result = fmt.Sprintf("error: %s\n", err)
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		default:
			result, err = s.Eval(line)
			if err != nil {
				result = fmt.Sprintf("error: %s\n", err)
			}
		}
		if _, err := io.WriteString(s.out, result); err != nil {
			return err
		}
	}
	log.Infof("session done: %d lines, %d failed", s.stats.Lines, s.stats.Failures)
	return nil
}

// Stats returns the number of lines processed so far and how many of them
// failed.
func (s *Session) Stats() Stats {
	return s.stats
}
