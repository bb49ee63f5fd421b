// Package logger implements the console sink using log/slog.
package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/zix/internal/adapters/detector"
)

// LevelOK sits between info and warn and marks a completed change.
const LevelOK = slog.Level(2)

// messager describes an error that can report its own message without the chain.
// zerr.Error provides it.
type messager interface {
	Message() string
}

// Logger implements ports.Logger. Info, ok and warn messages go to the
// standard output sink, errors to the error sink.
type Logger struct {
	mu     sync.Mutex
	env    detector.Environment
	out    io.Writer
	errOut io.Writer
	stdout *slog.Logger
	stderr *slog.Logger
}

// New creates a Logger writing to os.Stdout and os.Stderr.
func New(env detector.Environment) *Logger {
	l := &Logger{
		env:    env,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	l.rebuild()
	return l
}

// SetOutput redirects both sinks. A nil writer restores the process default.
func (l *Logger) SetOutput(out, errOut io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	l.out = out
	l.errOut = errOut
	l.rebuild()
}

func (l *Logger) rebuild() {
	l.stdout = slog.New(l.handler(l.out))
	l.stderr = slog.New(l.handler(l.errOut))
}

func (l *Logger) handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.env.Format == detector.FormatJSON {
		opts.ReplaceAttr = replaceLevel
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts, l.env.Color)
}

// replaceLevel gives LevelOK a readable name in JSON records.
func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelOK {
		a.Value = slog.StringValue("OK")
	}
	return a
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout.Info(msg)
}

// Ok logs a completed change.
func (l *Logger) Ok(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout.Log(context.Background(), LevelOK, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout.Warn(msg)
}

// Error logs an error and its cause chain to the error sink.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	messages := chain(err)

	if l.env.Format == detector.FormatJSON {
		l.stderr.Error(messages[0], "error", err.Error())
		return
	}

	l.stderr.Error(formatChain(messages))
}

// chain collects the messages of a zerr chain. A foreign error contributes its
// full text and ends the walk. Empty zerr messages, as left by metadata-only
// wrappers, are skipped.
func chain(err error) []string {
	var messages []string
	current := err

	for current != nil {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		if msg := m.Message(); msg != "" {
			messages = append(messages, msg)
		}
		current = errors.Unwrap(current)
	}

	if len(messages) == 0 {
		messages = append(messages, err.Error())
	}
	return messages
}

// formatChain renders the head message followed by an indented cause list.
func formatChain(messages []string) string {
	var lines []string

	for i, msg := range messages {
		parts := strings.Split(msg, "\n")

		if i == 0 {
			lines = append(lines, parts[0])
			for _, line := range parts[1:] {
				lines = append(lines, "        "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "  Caused by:")
		}
		lines = append(lines, "    → "+parts[0])
		for _, line := range parts[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}
