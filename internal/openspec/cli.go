// Package openspec drives the OpenSpec command-line tool.
package openspec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specdeck/specdeck/internal/process"
)

// DefaultBinary is the executable name probed on PATH.
const DefaultBinary = "openspec"

// ErrUnavailable is returned when the OpenSpec CLI cannot be invoked at all.
var ErrUnavailable = errors.New("openspec CLI is not available")

// Client invokes the OpenSpec CLI binary.
type Client struct {
	binary string
}

// NewClient returns a client for the given binary name. An empty name uses
// DefaultBinary.
func NewClient(binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{binary: binary}
}

// Status reports whether the CLI is installed and, if so, its version
// string. A failed probe is an expected outcome, never an error.
type Status struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
}

// Status probes the CLI with its version flag. Any spawn failure or non-zero
// exit means "not installed". The version is taken from trimmed stdout if
// non-empty, else trimmed stderr, else left empty — all three count as
// installed when the probe itself succeeds.
func (c *Client) Status() Status {
	res, err := process.Capture(process.Invocation{
		Name: c.binary,
		Args: []string{"--version"},
	})
	if err != nil {
		return Status{}
	}
	version := strings.TrimSpace(res.Stdout)
	if version == "" {
		version = strings.TrimSpace(res.Stderr)
	}
	return Status{Available: true, Version: version}
}

// ListTools returns the ordered tool names advertised by `openspec init
// --help`. A CLI that cannot be invoked or refuses the help flag reports
// ErrUnavailable.
func (c *Client) ListTools() ([]string, error) {
	res, err := process.Capture(process.Invocation{
		Name: c.binary,
		Args: []string{"init", "--help"},
	})
	if err != nil {
		var exitErr *process.ExitError
		if errors.Is(err, process.ErrExecutableNotFound) || errors.As(err, &exitErr) {
			return nil, ErrUnavailable
		}
		return nil, err
	}
	return ParseSupportedTools(res.Stdout)
}

// Init runs `openspec init` in dir with the tools chosen by sel, streaming
// output to sink under the "init" operation label. The selection is
// validated before any process is spawned.
func (c *Client) Init(dir string, sel Selection, sink process.Sink) (*process.Result, error) {
	arg, err := sel.ToolsArg()
	if err != nil {
		return nil, err
	}

	res, err := process.Run("init", process.Invocation{
		Name: c.binary,
		Args: []string{"init", "--tools", arg},
		Dir:  dir,
	}, sink)
	if err != nil {
		if errors.Is(err, process.ErrExecutableNotFound) {
			return nil, ErrUnavailable
		}
		return nil, fmt.Errorf("openspec init: %w", err)
	}
	return res, nil
}
