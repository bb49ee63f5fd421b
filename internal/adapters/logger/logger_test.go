package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.trai.ch/zix/internal/adapters/detector"
	"go.trai.ch/zix/internal/adapters/logger"
)

// newTestLogger creates a logger with injected buffers and colors disabled.
func newTestLogger(t *testing.T) (lg *logger.Logger, out, errOut *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	out = &bytes.Buffer{}
	errOut = &bytes.Buffer{}
	lg = logger.New(detector.Environment{Format: detector.FormatPretty})
	lg.SetOutput(out, errOut)
	return lg, out, errOut
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(lg *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *logger.Logger) { lg.Info("Applying profile 'work'...") },
			goldenName: "info_basic",
		},
		{
			name:       "ok",
			log:        func(lg *logger.Logger) { lg.Ok("Added hello to profile 'default'.") },
			goldenName: "ok_basic",
		},
		{
			name:       "warn",
			log:        func(lg *logger.Logger) { lg.Warn("Manifest already exists; no changes made.") },
			goldenName: "warn_basic",
		},
		{
			name:       "empty info",
			log:        func(lg *logger.Logger) { lg.Info("") },
			goldenName: "info_empty",
		},
		{
			name: "mixed sequence",
			log: func(lg *logger.Logger) {
				lg.Info("one")
				lg.Ok("two")
				lg.Warn("three")
			},
			goldenName: "sequence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, out, errOut := newTestLogger(t)
			tt.log(lg)

			assert.Empty(t, errOut.String(), "only errors go to the error sink")

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, out.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        zerr.New("Profile 'work' does not exist."),
			goldenName: "error_simple",
		},
		{
			name:       "stdlib error",
			err:        os.ErrPermission,
			goldenName: "error_stdlib",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("permission denied"), "failed to write manifest"),
				"could not save changes",
			),
			goldenName: "error_chain",
		},
		{
			name:       "metadata wrapper is skipped",
			err:        zerr.With(errors.New("no such file"), "path", "/tmp/x"),
			goldenName: "error_metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, out, errOut := newTestLogger(t)
			lg.Error(tt.err)

			assert.Empty(t, out.String(), "errors must not reach stdout")

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, errOut.Bytes())
		})
	}
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	inner := errors.New("connection refused")
	outer := fmt.Errorf("failed to query store: %w", inner)

	lg, _, errOut := newTestLogger(t)
	lg.Error(outer)

	assert.Equal(t, "[error] failed to query store: connection refused\n", errOut.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, out, errOut := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestLogger_JSON(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	lg := logger.New(detector.Environment{Format: detector.FormatJSON})
	lg.SetOutput(out, errOut)

	lg.Ok("Switched to profile 'work'.")
	lg.Error(zerr.Wrap(errors.New("disk full"), "failed to write manifest"))

	assert.Contains(t, out.String(), `"level":"OK"`)
	assert.Contains(t, out.String(), `"msg":"Switched to profile 'work'."`)
	assert.NotContains(t, out.String(), "[ok]")

	assert.Contains(t, errOut.String(), `"level":"ERROR"`)
	assert.Contains(t, errOut.String(), `"msg":"failed to write manifest"`)
	assert.Contains(t, errOut.String(), `"error":"failed to write manifest: disk full"`)
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New(detector.Environment{})
		lg.SetOutput(nil, nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _, _ := newTestLogger(t)

	done := make(chan bool, 5)

	go func() {
		lg.Info("concurrent info")
		done <- true
	}()
	go func() {
		lg.Ok("concurrent ok")
		done <- true
	}()
	go func() {
		lg.Warn("concurrent warn")
		done <- true
	}()
	go func() {
		lg.Error(errors.New("concurrent error"))
		done <- true
	}()
	go func() {
		lg.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})
		done <- true
	}()

	for range 5 {
		<-done
	}
}
