package process

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"sync"
)

// ErrExecutableNotFound is returned when the requested executable cannot be
// located. Callers map it onto a context-specific failure (git missing,
// package manager missing, CLI missing).
var ErrExecutableNotFound = errors.New("executable not found")

// Invocation describes one spawn-to-exit run of an external command.
type Invocation struct {
	Name string
	Args []string
	Dir  string // working directory; empty = inherit
}

func (inv Invocation) String() string {
	if len(inv.Args) == 0 {
		return inv.Name
	}
	return inv.Name + " " + strings.Join(inv.Args, " ")
}

// Result is the aggregated outcome of a finished command. Stdout and Stderr
// hold the full per-stream text with lines joined by newlines.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ExitError reports a command that ran but exited non-zero. ExitCode is -1
// when the OS could not report a status (e.g. the child was killed by a
// signal). Stderr carries the full captured text for diagnostics.
type ExitError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d: %s", e.Command, e.ExitCode, e.Stderr)
}

// Run spawns inv and drains stdout and stderr concurrently, forwarding each
// line to sink tagged with operation and the stream it came from. It blocks
// until the child exits and both streams hit EOF. A nil sink disables
// streaming. There is no cancellation: invocations run to completion.
//
// Failures: ErrExecutableNotFound (wrapped) when the executable cannot be
// found, *ExitError on a non-zero exit, and the underlying error for any
// other spawn or wait failure.
func Run(operation string, inv Invocation, sink Sink) (*Result, error) {
	cmd := exec.Command(inv.Name, inv.Args...)
	if inv.Dir != "" {
		cmd.Dir = inv.Dir
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", inv.Name, ErrExecutableNotFound)
		}
		return nil, fmt.Errorf("start %s: %w", inv.Name, err)
	}

	var outBuf, errBuf lineBuffer
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		drain(operation, StreamStdout, stdout, &outBuf, sink)
	}()
	go func() {
		defer wg.Done()
		drain(operation, StreamStderr, stderr, &errBuf, sink)
	}()

	// Both drains must finish before the buffers are read, otherwise the
	// result could miss lines still in flight.
	wg.Wait()
	waitErr := cmd.Wait()

	stdoutText, stderrText := outBuf.Text(), errBuf.Text()
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			// ExitCode is -1 when the child was killed by a signal.
			return nil, &ExitError{
				Command:  inv.Name,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderrText,
			}
		}
		return nil, fmt.Errorf("wait for %s: %w", inv.Name, waitErr)
	}

	return &Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdoutText,
		Stderr:   stderrText,
	}, nil
}

// Capture runs inv to completion without streaming. Used by the read-only
// probes (git root resolution, version checks).
func Capture(inv Invocation) (*Result, error) {
	return Run("", inv, nil)
}
