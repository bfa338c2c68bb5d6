// Package update checks GitHub Releases for newer specdeck builds and can
// replace the running binary in place.
package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	selfupdate "github.com/creativeprojects/go-selfupdate"
)

// Repo is the GitHub slug releases are published under.
const Repo = "specdeck/specdeck"

const (
	checkTimeout = 10 * time.Second
	applyTimeout = 2 * time.Minute
)

// Release describes an available newer version.
type Release struct {
	Version      string
	URL          string
	ReleaseNotes string
}

// Check looks for a release newer than currentVersion. It returns nil for
// development builds and when already up to date.
func Check(currentVersion string) (*Release, error) {
	current, err := parseVersion(currentVersion)
	if err != nil {
		return nil, nil // dev or dirty build, skip silently
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(Repo))
	if err != nil {
		return nil, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, nil
	}

	latestVer, err := parseVersion(latest.Version())
	if err != nil || !latestVer.GreaterThan(current) {
		return nil, nil
	}

	return &Release{
		Version:      latest.Version(),
		URL:          latest.URL,
		ReleaseNotes: latest.ReleaseNotes,
	}, nil
}

// Apply downloads the latest release and replaces the current executable.
func Apply(currentVersion string) (*Release, error) {
	if _, err := parseVersion(currentVersion); err != nil {
		return nil, fmt.Errorf("cannot update a development build — install from a release first")
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), applyTimeout)
	defer cancel()

	rel, err := updater.UpdateSelf(ctx, strings.TrimPrefix(currentVersion, "v"), selfupdate.ParseSlug(Repo))
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}

	return &Release{
		Version:      rel.Version(),
		URL:          rel.URL,
		ReleaseNotes: rel.ReleaseNotes,
	}, nil
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("create github source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("create updater: %w", err)
	}
	return updater, nil
}

// parseVersion strips a leading "v" and rejects non-release strings like
// "dev" or empty versions.
func parseVersion(s string) (*semver.Version, error) {
	if s == "" || s == "dev" {
		return nil, fmt.Errorf("not a release version: %q", s)
	}
	return semver.NewVersion(strings.TrimPrefix(s, "v"))
}
