package ui

import "github.com/specdeck/specdeck/internal/update"

// updateCheck is swapped out in tests to avoid network access.
var updateCheck = func() (*update.Release, error) {
	return update.Check(Version)
}
