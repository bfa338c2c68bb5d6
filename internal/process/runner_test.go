package process

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func shRun(t *testing.T, script string, sink Sink) (*Result, error) {
	t.Helper()
	return Run("test", Invocation{Name: "sh", Args: []string{"-c", script}}, sink)
}

func TestRunAggregatesBothStreams(t *testing.T) {
	res, err := shRun(t, `
		for i in 1 2 3 4 5; do echo "out $i"; done
		for i in 1 2 3; do echo "err $i" >&2; done
	`, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("expected exit 0, got %d", res.ExitCode)
	}

	outLines := strings.Split(res.Stdout, "\n")
	if len(outLines) != 5 {
		t.Fatalf("expected 5 stdout lines, got %d: %q", len(outLines), res.Stdout)
	}
	for i, line := range outLines {
		if want := fmt.Sprintf("out %d", i+1); line != want {
			t.Errorf("stdout line %d: got %q, want %q", i, line, want)
		}
	}

	errLines := strings.Split(res.Stderr, "\n")
	if len(errLines) != 3 {
		t.Fatalf("expected 3 stderr lines, got %d: %q", len(errLines), res.Stderr)
	}
	for i, line := range errLines {
		if want := fmt.Sprintf("err %d", i+1); line != want {
			t.Errorf("stderr line %d: got %q, want %q", i, line, want)
		}
	}
}

func TestRunPreservesPerStreamOrderWhenInterleaved(t *testing.T) {
	res, err := shRun(t, `
		i=1
		while [ $i -le 20 ]; do
			echo "out $i"
			echo "err $i" >&2
			i=$((i + 1))
		done
	`, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	for i, line := range strings.Split(res.Stdout, "\n") {
		if want := fmt.Sprintf("out %d", i+1); line != want {
			t.Fatalf("stdout order broken at line %d: got %q, want %q", i, line, want)
		}
	}
	for i, line := range strings.Split(res.Stderr, "\n") {
		if want := fmt.Sprintf("err %d", i+1); line != want {
			t.Fatalf("stderr order broken at line %d: got %q, want %q", i, line, want)
		}
	}
}

func TestRunEmitsTaggedEvents(t *testing.T) {
	sink := NewChanSink(64)
	_, err := shRun(t, `echo hello; echo world; echo oops >&2`, sink)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	sink.Close()

	var stdout, stderr []string
	for ev := range sink.Events() {
		if ev.Operation != "test" {
			t.Errorf("expected operation %q, got %q", "test", ev.Operation)
		}
		if ev.Time.IsZero() {
			t.Error("expected a non-zero event timestamp")
		}
		switch ev.Stream {
		case StreamStdout:
			stdout = append(stdout, ev.Line)
		case StreamStderr:
			stderr = append(stderr, ev.Line)
		default:
			t.Errorf("unexpected stream tag %q", ev.Stream)
		}
	}

	if want := []string{"hello", "world"}; !equalLines(stdout, want) {
		t.Errorf("stdout events: got %v, want %v", stdout, want)
	}
	if want := []string{"oops"}; !equalLines(stderr, want) {
		t.Errorf("stderr events: got %v, want %v", stderr, want)
	}
}

func TestRunNonZeroExitCarriesStatusAndStderr(t *testing.T) {
	_, err := shRun(t, `echo partial; echo broken >&2; exit 3`, nil)
	if err == nil {
		t.Fatal("expected an error for non-zero exit")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", exitErr.ExitCode)
	}
	if exitErr.Stderr != "broken" {
		t.Errorf("expected stderr %q, got %q", "broken", exitErr.Stderr)
	}
	if exitErr.Command != "sh" {
		t.Errorf("expected command %q, got %q", "sh", exitErr.Command)
	}
}

func TestRunSignalDeathReportsSentinelStatus(t *testing.T) {
	_, err := shRun(t, `kill -TERM $$`, nil)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode != -1 {
		t.Errorf("expected sentinel exit code -1, got %d", exitErr.ExitCode)
	}
}

func TestRunExecutableNotFound(t *testing.T) {
	_, err := Run("test", Invocation{Name: "specdeck-no-such-binary"}, nil)
	if !errors.Is(err, ErrExecutableNotFound) {
		t.Fatalf("expected ErrExecutableNotFound, got %v", err)
	}
}

func TestRunRespectsWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	res, err := Run("test", Invocation{Name: "pwd", Dir: dir}, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// TempDir may sit behind a symlink (e.g. /tmp on darwin); compare the
	// tail component instead of the full resolved path.
	if filepath.Base(res.Stdout) != filepath.Base(dir) {
		t.Errorf("expected pwd under %q, got %q", dir, res.Stdout)
	}
}

func TestRunEmptyOutput(t *testing.T) {
	res, err := shRun(t, `true`, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Stdout != "" || res.Stderr != "" {
		t.Errorf("expected empty streams, got stdout=%q stderr=%q", res.Stdout, res.Stderr)
	}
}

func TestRunRecoversMalformedBytes(t *testing.T) {
	// \377 is 0xFF, never valid in UTF-8; the line must survive with the
	// bad byte replaced rather than being dropped or splitting the run.
	res, err := shRun(t, `printf 'ok\377bad\n'; printf 'warn\377\n' >&2`, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Stdout != "ok�bad" {
		t.Errorf("stdout: got %q, want %q", res.Stdout, "ok�bad")
	}
	if res.Stderr != "warn�" {
		t.Errorf("stderr: got %q, want %q", res.Stderr, "warn�")
	}
}

func TestCaptureProbeStyleRun(t *testing.T) {
	res, err := Capture(Invocation{Name: "sh", Args: []string{"-c", "echo 1.2.3"}})
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if res.Stdout != "1.2.3" {
		t.Errorf("expected %q, got %q", "1.2.3", res.Stdout)
	}
}

func equalLines(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
