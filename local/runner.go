package local

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

//go:generate mockgen -destination mocks/mocks.go -package mocks github.com/ONSdigital/dp-qri-client/local Runner

// Runner executes the qri binary with an argument vector.
type Runner interface {
	// Run returns the captured output and the exit code of the process. err
	// is only set when the process could not be run or did not finish.
	Run(ctx context.Context, args ...string) (stdout []byte, stderr []byte, exitCode int, err error)
	// LookPath resolves the binary without running it.
	LookPath() (string, error)
}

// ExecRunner runs a binary as a subprocess. Arguments are passed as discrete
// tokens and never through a shell.
type ExecRunner struct {
	Bin     string
	Timeout time.Duration
}

// NewExecRunner returns a runner for bin. A zero timeout lets commands run
// for as long as they need.
func NewExecRunner(bin string, timeout time.Duration) *ExecRunner {
	return &ExecRunner{Bin: bin, Timeout: timeout}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, args ...string) ([]byte, []byte, int, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.Bin, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return stdout.Bytes(), stderr.Bytes(), -1, fmt.Errorf("%s %v: %w", r.Bin, args, ctxErr)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.Bytes(), stderr.Bytes(), exitErr.ExitCode(), nil
		}
		return stdout.Bytes(), stderr.Bytes(), -1, err
	}
	return stdout.Bytes(), stderr.Bytes(), 0, nil
}

// LookPath implements Runner.
func (r *ExecRunner) LookPath() (string, error) {
	return exec.LookPath(r.Bin)
}
