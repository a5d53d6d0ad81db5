// Package shell runs an interactive session in which every line is one
// command. The caller supplies the dispatcher so the selection made by a
// `use` line stays in effect for the following lines.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ErrUnterminatedQuote is returned by Split for a line with an open quote.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// Split breaks a line into words. Single quotes preserve everything
// literally, double quotes allow backslash escapes of `"` and `\`, and an
// unquoted backslash escapes the next character.
func Split(line string) ([]string, error) {
	var (
		words   []string
		cur     strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote == '\'':
			if r == '\'' {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case quote == '"':
			switch r {
			case '"':
				quote = 0
			case '\\':
				escaped = true
			default:
				cur.WriteRune(r)
			}
		case r == '\\':
			escaped = true
			inWord = true
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 || escaped {
		return nil, ErrUnterminatedQuote
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words, nil
}

// Dispatcher runs one command line.
type Dispatcher func(ctx context.Context, args []string) error

// Shell reads commands from in until EOF, exit or quit.
type Shell struct {
	in       io.Reader
	out      io.Writer
	prompt   string
	dispatch Dispatcher
	logger   zerolog.Logger
}

// New creates a Shell.
func New(in io.Reader, out io.Writer, prompt string, dispatch Dispatcher, logger zerolog.Logger) *Shell {
	return &Shell{
		in:       in,
		out:      out,
		prompt:   prompt,
		dispatch: dispatch,
		logger:   logger.With().Str("component", "shell").Logger(),
	}
}

// Run executes lines until the input ends or ctx is cancelled. Errors from
// individual lines are printed and do not stop the session.
func (s *Shell) Run(ctx context.Context) error {
	sc := bufio.NewScanner(s.in)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	lines := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, s.prompt)
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			break
		}
		lines++

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		args, err := Split(line)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		if err := s.dispatch(ctx, args); err != nil {
			s.logger.Debug().Err(err).Str("line", line).Msg("command failed")
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}

	s.logger.Debug().Int("lines", lines).Msg("shell finished")
	return sc.Err()
}
