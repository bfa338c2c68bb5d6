// Package git resolves a selected folder to the git repository that owns it.
package git

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/specdeck/specdeck/internal/process"
)

var (
	ErrMissingPath     = errors.New("path does not exist")
	ErrNotDirectory    = errors.New("path is not a directory")
	ErrUnavailable     = errors.New("git is not available")
	ErrNotWorkTree     = errors.New("path is not a git work tree")
	ErrRootUnavailable = errors.New("could not resolve repository root")
)

// markerDir is the well-known subdirectory whose presence under the repo
// root marks an already-initialized spec project.
const markerDir = "openspec"

// Project describes a discovered repository. Field names serialize the way
// the UI consumes them.
type Project struct {
	RepoPath        string `json:"repoPath"`
	RepoName        string `json:"repoName"`
	OpenspecPresent bool   `json:"openspecPresent"`
}

// Discover checks that path is an existing directory inside a git work tree
// and resolves the repository root, reporting whether the openspec marker
// directory exists directly under it. The root is resolved by git itself, so
// a nested subdirectory discovers its repository's top level.
func Discover(path string) (*Project, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrMissingPath
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrNotDirectory
	}

	res, err := process.Capture(process.Invocation{
		Name: "git",
		Args: []string{"-C", path, "rev-parse", "--show-toplevel"},
	})
	if err != nil {
		var exitErr *process.ExitError
		switch {
		case errors.Is(err, process.ErrExecutableNotFound):
			return nil, ErrUnavailable
		case errors.As(err, &exitErr):
			return nil, ErrNotWorkTree
		default:
			return nil, err
		}
	}

	root := strings.TrimSpace(res.Stdout)
	if root == "" {
		return nil, ErrRootUnavailable
	}

	marker := false
	if fi, statErr := os.Stat(filepath.Join(root, markerDir)); statErr == nil {
		marker = fi.IsDir()
	}

	return &Project{
		RepoPath:        root,
		RepoName:        filepath.Base(root),
		OpenspecPresent: marker,
	}, nil
}
