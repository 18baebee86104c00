package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig is the optional .reprotoparse.toml read from the current
// directory for CLI defaults. It is CLI-tool configuration, not the
// package-manifest/build-config layer the core excludes.
type fileConfig struct {
	MaxDiagnostics  int    `toml:"max_diagnostics"`
	Color           string `toml:"color"`
	MaxNestingDepth int    `toml:"max_nesting_depth"`
}

const configFileName = ".reprotoparse.toml"

func defaultConfig() fileConfig {
	return fileConfig{MaxDiagnostics: 100, Color: "auto", MaxNestingDepth: 64}
}

// loadConfig reads configFileName from the working directory. A missing
// file is not an error; any other read/parse failure is.
func loadConfig() (fileConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(configFileName) // #nosec G304 -- fixed, repo-relative filename
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
