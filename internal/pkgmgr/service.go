package pkgmgr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specdeck/specdeck/internal/process"
)

var (
	// ErrUnsupported is returned for manager names outside the catalog,
	// before any process is spawned.
	ErrUnsupported = errors.New("unsupported package manager")
	// ErrUnavailable is returned when a cataloged manager's executable is
	// missing at install time.
	ErrUnavailable = errors.New("package manager is not available")
)

// ManagerStatus is the probe result for one package manager.
type ManagerStatus struct {
	Name      string `json:"name"`
	Installed bool   `json:"installed"`
	Version   string `json:"version,omitempty"`
}

// Service answers status queries and runs installs against the catalog.
type Service struct {
	catalog Catalog
}

func NewService(cat Catalog) *Service {
	return &Service{catalog: cat}
}

// Statuses probes every cataloged manager in order. Probe failures are
// reported as not-installed, never as errors.
func (s *Service) Statuses() []ManagerStatus {
	statuses := make([]ManagerStatus, 0, len(s.catalog.Managers))
	for _, m := range s.catalog.Managers {
		statuses = append(statuses, probe(m))
	}
	return statuses
}

func probe(m Manager) ManagerStatus {
	res, err := process.Capture(process.Invocation{Name: m.Name, Args: m.VersionArgs})
	if err != nil {
		return ManagerStatus{Name: m.Name}
	}
	version := strings.TrimSpace(res.Stdout)
	if version == "" {
		version = strings.TrimSpace(res.Stderr)
	}
	return ManagerStatus{Name: m.Name, Installed: true, Version: version}
}

// Install runs the named manager's global install of the OpenSpec CLI,
// streaming output to sink under the "install" operation label.
func (s *Service) Install(name string, sink process.Sink) (*process.Result, error) {
	mgr, ok := s.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupported)
	}

	res, err := process.Run("install", process.Invocation{
		Name: mgr.Name,
		Args: mgr.InstallArgs,
	}, sink)
	if err != nil {
		if errors.Is(err, process.ErrExecutableNotFound) {
			return nil, fmt.Errorf("%s: %w", name, ErrUnavailable)
		}
		return nil, err
	}
	return res, nil
}

func (s *Service) lookup(name string) (Manager, bool) {
	for _, m := range s.catalog.Managers {
		if m.Name == name {
			return m, true
		}
	}
	return Manager{}, false
}
