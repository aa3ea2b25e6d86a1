// Package config persists CLI settings as a TOML file and resolves
// values across flags, environment variables, and the file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Environment variables consulted during resolution.
const (
	EnvToken  = "GITHUB_TOKEN"
	EnvAPIURL = "GITHUB_API_URL"
)

// Config holds the persisted settings. Both fields are optional; an
// absent config file behaves like a zero Config.
type Config struct {
	APIURL string `toml:"api_url,omitempty"`
	Token  string `toml:"token,omitempty"`
}

// Source identifies where a resolved value came from.
type Source string

const (
	SourceFlag Source = "flag"
	SourceEnv  Source = "environment"
	SourceFile Source = "config file"
	SourceNone Source = "unset"
)

// Path returns the config file location, following the XDG standard
// (~/.config/issueclone/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "issueclone", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "issueclone", "config.toml"), nil
}

// Load reads the config file. A missing file yields a zero Config.
func Load() (Config, error) {
	var cfg Config
	path, err := Path()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config file, creating its directory if needed.
// The file is written 0600 since it may hold a token.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// ResolveToken picks the credential to use: the flag wins, then
// GITHUB_TOKEN, then the config file.
func ResolveToken(flagValue string, cfg Config) (string, Source) {
	if flagValue != "" {
		return flagValue, SourceFlag
	}
	if env := os.Getenv(EnvToken); env != "" {
		return env, SourceEnv
	}
	if cfg.Token != "" {
		return cfg.Token, SourceFile
	}
	return "", SourceNone
}

// ResolveAPIURL picks the API base URL: the flag wins, then
// GITHUB_API_URL, then the config file. An empty result means the
// public GitHub API.
func ResolveAPIURL(flagValue string, cfg Config) (string, Source) {
	if flagValue != "" {
		return flagValue, SourceFlag
	}
	if env := os.Getenv(EnvAPIURL); env != "" {
		return env, SourceEnv
	}
	if cfg.APIURL != "" {
		return cfg.APIURL, SourceFile
	}
	return "", SourceNone
}

// Redact masks a token for display, keeping the first and last four
// characters of long tokens.
func Redact(token string) string {
	if token == "" {
		return ""
	}
	if len(token) > 8 {
		return token[:4] + "..." + token[len(token)-4:]
	}
	return "****"
}
