package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds defaults read from a TOML file. Command line flags win
// over anything set here.
//
//	byte_order  = "little"
//	compression = "gzip"
//	limits      = "strict"
//	backup      = true
//	color       = "never"
//	format      = "snbt"
type Config struct {
	ByteOrder   string `toml:"byte_order"`
	Compression string `toml:"compression"`
	Limits      string `toml:"limits"`
	Backup      bool   `toml:"backup"`
	Color       string `toml:"color"`
	Format      string `toml:"format"`
}

func defaultConfig() Config {
	return Config{Limits: "default", Color: "auto", Format: "text"}
}

// configFile resolves the config location: the flag, then
// $NBTCTL_CONFIG, then the user config directory. The second result
// reports whether the path was named explicitly.
func configFile(flag string) (string, bool) {
	if flag != "" {
		return flag, true
	}
	if env := os.Getenv("NBTCTL_CONFIG"); env != "" {
		return env, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "nbtctl", "config.toml"), false
}

// loadConfig reads the config file. A missing default file is not an
// error; a missing explicit one is.
func loadConfig(flag string) (Config, error) {
	c := defaultConfig()
	path, explicit := configFile(flag)
	if path == "" {
		return c, nil
	}
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return c, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return c, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return c, nil
}
