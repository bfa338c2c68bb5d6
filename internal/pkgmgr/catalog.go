// Package pkgmgr probes host package managers and installs the OpenSpec CLI
// through them.
package pkgmgr

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var defaultCatalog []byte

// Manager describes one known package manager: how to probe its version and
// the argv for a global install of the OpenSpec CLI.
type Manager struct {
	Name        string   `toml:"name"`
	VersionArgs []string `toml:"version_args"`
	InstallArgs []string `toml:"install_args"`
}

// Catalog is the ordered set of known managers.
type Catalog struct {
	Managers []Manager `toml:"manager"`
}

// LoadCatalog reads a catalog from path, or the embedded default when path
// is empty.
func LoadCatalog(path string) (Catalog, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return Catalog{}, fmt.Errorf("read catalog: %w", err)
		}
	}

	var cat Catalog
	if err := toml.Unmarshal(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if len(cat.Managers) == 0 {
		return Catalog{}, fmt.Errorf("catalog defines no package managers")
	}
	for _, m := range cat.Managers {
		if m.Name == "" || len(m.InstallArgs) == 0 {
			return Catalog{}, fmt.Errorf("catalog entry %q is incomplete", m.Name)
		}
	}
	return cat, nil
}
