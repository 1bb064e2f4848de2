package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"xray-rpc-sync/internal/logger"
)

// Default returns the built-in configuration: the stock XTLS/Xray-core
// endpoints, ~/xray-node as the install directory, xray_rpc as the generated
// package, and poetry as the version tool.
func Default() Config {
	return Config{
		Upstream: Upstream{
			Owner:        "XTLS",
			Repo:         "Xray-core",
			APIBase:      "https://api.github.com",
			DownloadBase: "https://github.com",
			CDNBase:      "https://download.fastgit.org",
		},
		Install: Install{
			Path:   "", // resolved to ~/xray-node by the install layout
			UseCDN: true,
		},
		Compile: Compile{
			Python:    "python3",
			OutputDir: "xray_rpc",
			Package:   "xray_rpc",
		},
		Version: Version{
			Tool: "poetry",
		},
	}
}

// LoadConfig reads the YAML config file and returns a populated Config.
// A missing file is fine: the defaults cover the stock setup, and most runs
// never need a config file at all. A file that exists but fails to parse is
// a hard error, since silently ignoring it would sync against the wrong
// upstream.
func LoadConfig(configFile string) Config {
	cfg := Default()

	raw, err := os.ReadFile(configFile)
	if err != nil {
		logger.Debug("[DEBUG] Config file %s not readable (%v), using defaults\n", configFile, err)
		return cfg
	}

	// Unmarshal over the defaults so omitted keys keep their default values.
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		panic("Failed to unmarshal " + configFile + ": " + err.Error())
	}

	logger.Debug("[DEBUG] Loaded config from %s\n", configFile)
	return cfg
}
