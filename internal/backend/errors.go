package backend

import (
	"errors"
	"fmt"

	"github.com/specdeck/specdeck/internal/git"
	"github.com/specdeck/specdeck/internal/openspec"
	"github.com/specdeck/specdeck/internal/pkgmgr"
	"github.com/specdeck/specdeck/internal/process"
)

// Code is a stable machine-readable failure token.
type Code string

const (
	CodePathNotFound              Code = "path_not_found"
	CodePathNotDirectory          Code = "path_not_directory"
	CodeGitUnavailable            Code = "git_unavailable"
	CodeNotGitWorkTree            Code = "not_git_work_tree"
	CodeRepoRootUnavailable       Code = "repo_root_unavailable"
	CodeOpenspecUnavailable       Code = "openspec_unavailable"
	CodePackageManagerUnavailable Code = "package_manager_unavailable"
	CodePackageManagerUnsupported Code = "package_manager_unsupported"
	CodeToolsParseFailed          Code = "tools_parse_failed"
	CodeToolsMissing              Code = "tools_missing"
	CodeCommandFailed             Code = "command_failed"
	CodeIO                        Code = "io_error"
)

// Error is the payload every failed operation surfaces to the UI.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// classify maps a failure from the service packages onto its stable
// code+message pair. Raw OS error text only ever reaches the message field,
// wrapped into the generic I/O case.
func classify(err error) *Error {
	var be *Error
	if errors.As(err, &be) {
		return be
	}

	var exitErr *process.ExitError
	switch {
	case errors.Is(err, git.ErrMissingPath):
		return &Error{CodePathNotFound, "Path does not exist"}
	case errors.Is(err, git.ErrNotDirectory):
		return &Error{CodePathNotDirectory, "Path is not a directory"}
	case errors.Is(err, git.ErrUnavailable):
		return &Error{CodeGitUnavailable, "Git is not available"}
	case errors.Is(err, git.ErrNotWorkTree):
		return &Error{CodeNotGitWorkTree, "Path is not a git work tree"}
	case errors.Is(err, git.ErrRootUnavailable):
		return &Error{CodeRepoRootUnavailable, "Could not resolve repository root"}
	case errors.Is(err, openspec.ErrUnavailable):
		return &Error{CodeOpenspecUnavailable, "OpenSpec CLI is not installed"}
	case errors.Is(err, openspec.ErrToolsParse):
		return &Error{CodeToolsParseFailed, "Could not read the supported tool list"}
	case errors.Is(err, openspec.ErrNoToolsSelected):
		return &Error{CodeToolsMissing, "Select at least one tool"}
	case errors.Is(err, pkgmgr.ErrUnsupported):
		return &Error{CodePackageManagerUnsupported, "Package manager is not supported"}
	case errors.Is(err, pkgmgr.ErrUnavailable):
		return &Error{CodePackageManagerUnavailable, "Package manager is not installed"}
	case errors.As(err, &exitErr):
		return &Error{CodeCommandFailed, exitErr.Error()}
	default:
		return &Error{CodeIO, fmt.Sprintf("File system error: %v", err)}
	}
}
