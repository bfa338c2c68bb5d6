package config

// Config is the resolved application configuration.
type Config struct {
	CLI      CLIConfig      `yaml:"cli"`
	Managers ManagersConfig `yaml:"managers"`
	UI       UIConfig       `yaml:"ui"`
	Update   UpdateConfig   `yaml:"update"`
}

// CLIConfig controls how the OpenSpec CLI is invoked.
type CLIConfig struct {
	Binary string `yaml:"binary"`
}

// ManagersConfig points at an optional package-manager catalog override.
type ManagersConfig struct {
	Catalog string `yaml:"catalog"`
}

type UIConfig struct {
	LogLines    int `yaml:"log_lines"`    // lines kept in the log view
	EventBuffer int `yaml:"event_buffer"` // streamed-event channel capacity
}

type UpdateConfig struct {
	DisableCheck bool `yaml:"disable_check"`
}
