// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/zix/internal/core/domain"
)

// Executor runs external processes.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run starts the command with stdout and stderr inherited and waits for it.
	// It returns the exit code. A binary missing from the search path yields
	// ErrCommandNotFound with exit code 127.
	Run(ctx context.Context, cmd domain.Command) (int, error)

	// Output runs the command and returns its captured stdout.
	Output(ctx context.Context, cmd domain.Command) ([]byte, error)

	// LookPath reports the resolved path of an executable on the search path.
	LookPath(name string) (string, error)
}
