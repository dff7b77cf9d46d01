// Package prompt reads interactive input one line at a time.
package prompt

//go:generate mockgen -source=prompt.go -destination=prompt_mock.go -package=prompt

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrEmptyInput is returned by Input for a blank answer without a default.
var ErrEmptyInput = errors.New("empty input")

// Prompter reads answers from the user.
type Prompter interface {
	// ReadLine writes prompt as is and returns the next line without its
	// line ending. At end of input it returns an error wrapping io.EOF.
	ReadLine(prompt string) (string, error)

	// Input asks for a value. The prompt is shown as "prompt: " or, with a
	// default, "prompt [default]: ". The answer is trimmed.
	Input(prompt, defaultValue string) (string, error)
}

// LinePrompter reads lines from a reader and writes prompts to a writer.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a LinePrompter. Batch runs pass an empty reader so
// every question ends with io.EOF instead of blocking.
func NewPrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// ReadLine implements Prompter. A last line without a newline is returned
// before io.EOF.
func (p *LinePrompter) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(p.out, prompt); err != nil {
			return "", errors.Wrap(err, "failed to write prompt")
		}
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", errors.Wrap(err, "failed to read input")
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Input implements Prompter.
func (p *LinePrompter) Input(prompt, defaultValue string) (string, error) {
	label := prompt + ": "
	if defaultValue != "" {
		label = prompt + " [" + defaultValue + "]: "
	}

	answer, err := p.ReadLine(label)
	if err != nil {
		return "", err
	}

	switch answer = strings.TrimSpace(answer); {
	case answer != "":
		return answer, nil
	case defaultValue != "":
		return defaultValue, nil
	default:
		return "", ErrEmptyInput
	}
}

// WithContext returns a Prompter that stops waiting once ctx is done and
// returns ctx.Err(). The abandoned read keeps its goroutine until input
// arrives, so a cancelled Prompter should not be used again.
//
//nolint:ireturn // decorates any Prompter
func WithContext(ctx context.Context, p Prompter) Prompter {
	return &contextPrompter{ctx: ctx, p: p}
}

type contextPrompter struct {
	ctx context.Context
	p   Prompter
}

type answer struct {
	text string
	err  error
}

func (c *contextPrompter) wait(read func() (string, error)) (string, error) {
	if err := c.ctx.Err(); err != nil {
		return "", err
	}

	ch := make(chan answer, 1)

	go func() {
		text, err := read()
		ch <- answer{text, err}
	}()

	select {
	case a := <-ch:
		return a.text, a.err
	case <-c.ctx.Done():
		return "", c.ctx.Err()
	}
}

func (c *contextPrompter) ReadLine(prompt string) (string, error) {
	return c.wait(func() (string, error) { return c.p.ReadLine(prompt) })
}

func (c *contextPrompter) Input(prompt, defaultValue string) (string, error) {
	return c.wait(func() (string, error) { return c.p.Input(prompt, defaultValue) })
}
