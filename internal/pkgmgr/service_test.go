package pkgmgr

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specdeck/specdeck/internal/process"
)

// stubService builds a service over a catalog of fake managers, installing
// each stub script as an executable on PATH.
func stubService(t *testing.T, stubs map[string]string) *Service {
	t.Helper()
	dir := t.TempDir()

	var cat Catalog
	for name, script := range stubs {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
			t.Fatal(err)
		}
		cat.Managers = append(cat.Managers, Manager{
			Name:        name,
			VersionArgs: []string{"--version"},
			InstallArgs: []string{"add", "--global", "openspec"},
		})
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return NewService(cat)
}

func TestDefaultCatalogLoads(t *testing.T) {
	cat, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	want := []string{"npm", "pnpm", "yarn", "bun"}
	if len(cat.Managers) != len(want) {
		t.Fatalf("expected %d managers, got %d", len(want), len(cat.Managers))
	}
	for i, name := range want {
		if cat.Managers[i].Name != name {
			t.Errorf("manager %d: got %q, want %q", i, cat.Managers[i].Name, name)
		}
	}
}

func TestLoadCatalogOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	content := `
[[manager]]
name = "npm"
version_args = ["--version"]
install_args = ["install", "--global", "openspec"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cat.Managers) != 1 || cat.Managers[0].Name != "npm" {
		t.Errorf("unexpected catalog: %+v", cat)
	}
}

func TestLoadCatalogRejectsIncompleteEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	if err := os.WriteFile(path, []byte("[[manager]]\nname = \"npm\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("expected an error for an entry without install args")
	}
}

func TestStatusesNeverFail(t *testing.T) {
	svc := stubService(t, map[string]string{
		"goodpm": `echo "10.1.0"`,
		"sadpm":  `exit 1`,
	})
	// A manager missing from PATH entirely.
	svc.catalog.Managers = append(svc.catalog.Managers, Manager{
		Name:        "ghostpm",
		VersionArgs: []string{"--version"},
		InstallArgs: []string{"install"},
	})

	byName := map[string]ManagerStatus{}
	for _, st := range svc.Statuses() {
		byName[st.Name] = st
	}

	if st := byName["goodpm"]; !st.Installed || st.Version != "10.1.0" {
		t.Errorf("goodpm: expected installed 10.1.0, got %+v", st)
	}
	if st := byName["sadpm"]; st.Installed {
		t.Errorf("sadpm: expected not installed, got %+v", st)
	}
	if st := byName["ghostpm"]; st.Installed {
		t.Errorf("ghostpm: expected not installed, got %+v", st)
	}
}

func TestStatusesOrderMatchesCatalog(t *testing.T) {
	svc := NewService(Catalog{Managers: []Manager{
		{Name: "b", VersionArgs: []string{"--version"}, InstallArgs: []string{"x"}},
		{Name: "a", VersionArgs: []string{"--version"}, InstallArgs: []string{"x"}},
	}})
	statuses := svc.Statuses()
	if statuses[0].Name != "b" || statuses[1].Name != "a" {
		t.Errorf("catalog order not preserved: %+v", statuses)
	}
}

func TestInstallStreamsAndSucceeds(t *testing.T) {
	svc := stubService(t, map[string]string{
		"goodpm": `echo "added openspec"; echo "1 warning" >&2`,
	})

	sink := process.NewChanSink(16)
	res, err := svc.Install("goodpm", sink)
	if err != nil {
		t.Fatalf("install: %v", err)
	}
	sink.Close()

	if res.Stdout != "added openspec" {
		t.Errorf("unexpected stdout: %q", res.Stdout)
	}
	for ev := range sink.Events() {
		if ev.Operation != "install" {
			t.Errorf("expected operation %q, got %q", "install", ev.Operation)
		}
	}
}

func TestInstallUnsupportedManagerFailsBeforeSpawn(t *testing.T) {
	svc := NewService(Catalog{Managers: []Manager{
		{Name: "npm", VersionArgs: []string{"--version"}, InstallArgs: []string{"install"}},
	}})
	_, err := svc.Install("apt", nil)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestInstallMissingManagerBinary(t *testing.T) {
	svc := NewService(Catalog{Managers: []Manager{
		{Name: "specdeck-missing-pm", VersionArgs: []string{"--version"}, InstallArgs: []string{"install"}},
	}})
	_, err := svc.Install("specdeck-missing-pm", nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestInstallFailureCarriesExitError(t *testing.T) {
	svc := stubService(t, map[string]string{
		"sadpm": `echo "EACCES denied" >&2; exit 243`,
	})
	_, err := svc.Install("sadpm", nil)

	var exitErr *process.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *process.ExitError, got %v", err)
	}
	if exitErr.ExitCode != 243 || exitErr.Stderr != "EACCES denied" {
		t.Errorf("unexpected exit error: %+v", exitErr)
	}
}
