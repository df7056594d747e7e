package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/npillmayer/fontworld/hostfs"
	"github.com/tailscale/hujson"
)

// defaultConfigFile is read from the working directory if no --config is given.
const defaultConfigFile = ".fontworld.json"

var (
	errConfigRead    = errors.New("cannot read config file")
	errConfigInvalid = errors.New("invalid config file")
)

// Config holds the settings of the inspection tool. The config file is JSON
// with comments:
//
//	{
//	    "catalog": "fonts.json",       // face catalog, written after a scan
//	    "font_dirs": ["/usr/share/fonts/truetype/go"],
//	    "root": ".",                   // base for relative resource paths
//	    "trace": "Info",
//	    "generic": {"monospace": ["Go Mono"]},
//	}
type Config struct {
	Catalog  string              `json:"catalog"`
	FontDirs []string            `json:"font_dirs"`
	Root     string              `json:"root"`
	Trace    string              `json:"trace"`
	Generic  map[string][]string `json:"generic"`
}

func defaultConfig() Config {
	return Config{Trace: "Info"}
}

// loadConfig reads a config file. A missing file is an error only if
// mustExist is set; otherwise an empty config is returned.
func loadConfig(fsys hostfs.FS, path string, mustExist bool) (Config, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if !mustExist && hostfs.Classify(err) == hostfs.KindNotFound {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("%w %s: %w", errConfigRead, path, err)
	}
	cfg, err := parseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}
	return cfg, nil
}

func parseConfig(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return cfg, nil
}

// mergeConfig overlays all non-empty settings of overlay onto base.
func mergeConfig(base, overlay Config) Config {
	if overlay.Catalog != "" {
		base.Catalog = overlay.Catalog
	}
	if len(overlay.FontDirs) > 0 {
		base.FontDirs = overlay.FontDirs
	}
	if overlay.Root != "" {
		base.Root = overlay.Root
	}
	if overlay.Trace != "" {
		base.Trace = overlay.Trace
	}
	if len(overlay.Generic) > 0 {
		if base.Generic == nil {
			base.Generic = make(map[string][]string)
		}
		for g, families := range overlay.Generic {
			base.Generic[g] = families
		}
	}
	return base
}
