package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// useTempConfig points the config file at a temp directory.
func useTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "issueclone", "config.toml")
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if path != "/tmp/xdg/issueclone/config.toml" {
		t.Errorf("got %q, want XDG location", path)
	}
}

func TestLoad_Missing(t *testing.T) {
	useTempConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("got %+v, want zero config for missing file", cfg)
	}
}

func TestSaveLoad(t *testing.T) {
	path := useTempConfig(t)

	want := Config{APIURL: "https://ghe.example.com/api/v3", Token: "ghp_secret"}
	if err := Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat config file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("got mode %o, want 0600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := useTempConfig(t)
	os.MkdirAll(filepath.Dir(path), 0700)
	os.WriteFile(path, []byte("not = [valid"), 0600)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
	if !strings.Contains(err.Error(), "parse config file") {
		t.Errorf("got error %q, want parse failure", err)
	}
}

func TestResolveToken(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		env      string
		file     string
		want     string
		wantFrom Source
	}{
		{"flag wins", "from-flag", "from-env", "from-file", "from-flag", SourceFlag},
		{"env over file", "", "from-env", "from-file", "from-env", SourceEnv},
		{"file fallback", "", "", "from-file", "from-file", SourceFile},
		{"nothing set", "", "", "", "", SourceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvToken, tt.env)
			got, from := ResolveToken(tt.flag, Config{Token: tt.file})
			if got != tt.want {
				t.Errorf("got token %q, want %q", got, tt.want)
			}
			if from != tt.wantFrom {
				t.Errorf("got source %q, want %q", from, tt.wantFrom)
			}
		})
	}
}

func TestResolveAPIURL(t *testing.T) {
	t.Setenv(EnvAPIURL, "")

	url, from := ResolveAPIURL("", Config{})
	if url != "" || from != SourceNone {
		t.Errorf("got %q from %q, want unset default", url, from)
	}

	url, from = ResolveAPIURL("", Config{APIURL: "https://ghe.example.com"})
	if url != "https://ghe.example.com" || from != SourceFile {
		t.Errorf("got %q from %q, want config file value", url, from)
	}
}

func TestRedact(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"", ""},
		{"short", "****"},
		{"ghp_abcdefghijklmnop", "ghp_...mnop"},
	}

	for _, tt := range tests {
		if got := Redact(tt.token); got != tt.want {
			t.Errorf("Redact(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}
