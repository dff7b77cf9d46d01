// Package exec runs shell command lines and checks for tools in PATH.
package exec

//go:generate mockgen -source=shell.go -destination=shell_mock.go -package=exec

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/archium/archium/pkg/logger"
)

// ExitFailure is the status reported when a command line could not be run at all.
const ExitFailure = -1

// ErrParse is returned when a command line is not valid shell syntax.
var ErrParse = errors.New("invalid command line")

// ShellResult describes a finished command line.
type ShellResult struct {
	// ExitCode is the exit status of the last command.
	ExitCode int

	// OutputBytes counts bytes written to stdout and stderr.
	OutputBytes uint64

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Success reports whether the command exited with status 0.
func (r *ShellResult) Success() bool {
	return r != nil && r.ExitCode == 0
}

// ShellRunner executes POSIX shell command lines.
type ShellRunner interface {
	// Run parses and executes command. A non-zero exit status is reported in
	// the result, not as an error; errors mean the line never ran.
	Run(ctx context.Context, command string, stdout, stderr io.Writer) (*ShellResult, error)
}

// ShellOption configures a shellRunner.
type ShellOption func(*shellRunner)

// WithStdin sets the reader commands read their input from.
func WithStdin(r io.Reader) ShellOption {
	return func(s *shellRunner) {
		s.stdin = r
	}
}

// WithDir sets the working directory.
func WithDir(dir string) ShellOption {
	return func(s *shellRunner) {
		s.dir = dir
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) ShellOption {
	return func(s *shellRunner) {
		s.log = log
	}
}

// shellRunner implements ShellRunner with an in-process POSIX interpreter.
type shellRunner struct {
	stdin io.Reader
	dir   string
	log   logger.Logger
}

// NewShellRunner creates a new ShellRunner. Without options, commands read
// from os.Stdin and run in the current directory.
func NewShellRunner(opts ...ShellOption) *shellRunner {
	s := &shellRunner{
		stdin: os.Stdin,
		log:   logger.NewNoOpLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run executes command.
func (s *shellRunner) Run(ctx context.Context, command string, stdout, stderr io.Writer) (*ShellResult, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return nil, errors.Wrapf(ErrParse, "%v", err)
	}

	if stdout == nil {
		stdout = io.Discard
	}

	if stderr == nil {
		stderr = io.Discard
	}

	// External commands copy stdout and stderr on separate goroutines; the
	// shared lock keeps a writer passed for both from being written concurrently.
	var mu sync.Mutex

	out := &countingWriter{w: stdout, mu: &mu}
	errOut := &countingWriter{w: stderr, mu: &mu}

	opts := []interp.RunnerOption{interp.StdIO(s.stdin, out, errOut)}
	if s.dir != "" {
		opts = append(opts, interp.Dir(s.dir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create shell interpreter")
	}

	start := time.Now()
	runErr := runner.Run(ctx, file)

	result := &ShellResult{
		OutputBytes: out.n + errOut.n,
		Duration:    time.Since(start),
	}

	var status interp.ExitStatus

	switch {
	case runErr == nil:
	case errors.As(runErr, &status):
		result.ExitCode = int(status)
	default:
		result.ExitCode = ExitFailure

		return result, errors.Wrap(runErr, "failed to run command")
	}

	s.log.Debug("command finished",
		"command", command,
		"status", result.ExitCode,
		"output", humanize.Bytes(result.OutputBytes),
	)

	return result, nil
}

// RunCommand adapts a ShellRunner to the plugin run-command callback: the
// combined output goes to output and the exit status is returned, or
// ExitFailure when the line could not be run.
func RunCommand(runner ShellRunner, command string, output io.Writer) int {
	result, err := runner.Run(context.Background(), command, output, output)
	if err != nil {
		return ExitFailure
	}

	return result.ExitCode
}

type countingWriter struct {
	w  io.Writer
	mu *sync.Mutex
	n  uint64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, err := c.w.Write(p)
	c.n += uint64(n)

	return n, err
}
