// Package shell runs external processes on behalf of zix.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/zerr"
	"go.trai.ch/zix/internal/core/domain"
	"go.trai.ch/zix/internal/core/ports"
)

// ExitCodeInterrupted is reported when the context is cancelled while a command runs.
const ExitCodeInterrupted = 130

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates an Executor wired to the process's standard streams.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithIO replaces the streams handed to child processes.
func (e *Executor) WithIO(stdin io.Reader, stdout, stderr io.Writer) *Executor {
	e.stdin = stdin
	e.stdout = stdout
	e.stderr = stderr
	return e
}

// Run starts the command with the executor's streams and waits for it.
// A non-zero exit is reported and returned as the code with a nil error.
func (e *Executor) Run(ctx context.Context, c domain.Command) (int, error) {
	e.logger.Info("Running: " + c.String())

	path, err := e.LookPath(c.Name)
	if err != nil {
		e.logger.Error(zerr.New("Command not found: " + c.Name))
		return domain.ExitCodeNotFound, zerr.Wrap(domain.ErrCommandNotFound, c.Name)
	}

	cmd := exec.CommandContext(ctx, path, c.Args...) //nolint:gosec // arguments come from zix itself
	cmd.Args[0] = c.Name
	cmd.Dir = c.Dir
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	err = cmd.Run()
	if err == nil {
		return 0, nil
	}

	if ctx.Err() != nil {
		return ExitCodeInterrupted, zerr.Wrap(ctx.Err(), "command interrupted")
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		e.logger.Error(zerr.New(fmt.Sprintf("Command failed (exit %d): %s", code, c.String())))
		return code, nil
	}

	return 1, zerr.With(zerr.Wrap(err, domain.ErrCommandStartFailed.Error()), "command", c.String())
}

// Output runs the command and returns its stdout. Stderr is attached to the
// error when the command fails.
func (e *Executor) Output(ctx context.Context, c domain.Command) ([]byte, error) {
	path, err := e.LookPath(c.Name)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrCommandNotFound, c.Name)
	}

	cmd := exec.CommandContext(ctx, path, c.Args...) //nolint:gosec // arguments come from zix itself
	cmd.Args[0] = c.Name
	cmd.Dir = c.Dir

	out, err := cmd.Output()
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "command failed"), "command", c.String())
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			wrapped = zerr.With(wrapped, "stderr", string(exitErr.Stderr))
		}
		return nil, wrapped
	}

	return out, nil
}

// LookPath resolves name on the executable search path.
func (e *Executor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
