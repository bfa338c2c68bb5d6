package config

import (
	"fmt"
	"os"
	"strings"
)

func validate(cfg *Config) error {
	var problems []string

	if strings.TrimSpace(cfg.CLI.Binary) == "" {
		problems = append(problems, "cli.binary must not be empty")
	}
	if cfg.UI.LogLines <= 0 {
		problems = append(problems, fmt.Sprintf("ui.log_lines must be positive, got %d", cfg.UI.LogLines))
	}
	if cfg.UI.EventBuffer <= 0 {
		problems = append(problems, fmt.Sprintf("ui.event_buffer must be positive, got %d", cfg.UI.EventBuffer))
	}
	if cfg.Managers.Catalog != "" {
		if _, err := os.Stat(cfg.Managers.Catalog); err != nil {
			problems = append(problems, fmt.Sprintf("managers.catalog %q is not readable", cfg.Managers.Catalog))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}
