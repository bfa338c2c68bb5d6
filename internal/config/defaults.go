package config

// DefaultConfig returns the baseline configuration used when no file or
// override supplies a value.
func DefaultConfig() Config {
	return Config{
		CLI: CLIConfig{
			Binary: "openspec",
		},
		UI: UIConfig{
			LogLines:    2000,
			EventBuffer: 256,
		},
	}
}
