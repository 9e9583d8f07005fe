package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// InstallRootsEnv overrides install_roots with an OS path list.
const InstallRootsEnv = "MX_MODELER_INSTALL_ROOTS"

// DefaultRepository is where mx-modeler releases are published.
const DefaultRepository = "JelteLagendijk/mx-modeler"

// Config captures user-level settings for mx-modeler.
type Config struct {
	Version            int          `yaml:"version"`
	InstallRoots       []string     `yaml:"install_roots,omitempty"`
	AssociationCommand string       `yaml:"association_command,omitempty"`
	Update             UpdateConfig `yaml:"update"`
}

// UpdateConfig controls the release check.
type UpdateConfig struct {
	Repository  string `yaml:"repository"`
	TimeoutSec  int    `yaml:"timeout_s"`
	CacheTTLSec int    `yaml:"cache_ttl_s"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version:      1,
		InstallRoots: DefaultInstallRoots(),
		Update: UpdateConfig{
			Repository:  DefaultRepository,
			TimeoutSec:  10,
			CacheTTLSec: 3600,
		},
	}
}

// DefaultInstallRoots lists the directories Modeler installers use on the
// current platform.
func DefaultInstallRoots() []string {
	switch runtime.GOOS {
	case "windows":
		var roots []string
		for _, env := range []string{"ProgramFiles", "ProgramFiles(x86)"} {
			if dir := os.Getenv(env); dir != "" {
				roots = append(roots, filepath.Join(dir, "Mendix"))
			}
		}
		if len(roots) == 0 {
			roots = []string{`C:\Program Files\Mendix`, `C:\Program Files (x86)\Mendix`}
		}
		return roots
	case "darwin":
		return []string{"/Applications/Mendix"}
	default:
		return []string{"/opt/mendix"}
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise returns
// the default configuration. Environment overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	contents, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(contents, &cfg); err != nil {
			return Config{}, fmt.Errorf("unmarshal config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg.ApplyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

// ApplyDefaults ensures fields fall back to sensible defaults when the YAML
// omits them.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if len(c.InstallRoots) == 0 {
		c.InstallRoots = defaults.InstallRoots
	}
	c.AssociationCommand = strings.TrimSpace(c.AssociationCommand)
	if strings.TrimSpace(c.Update.Repository) == "" {
		c.Update.Repository = defaults.Update.Repository
	}
	if c.Update.TimeoutSec <= 0 {
		c.Update.TimeoutSec = defaults.Update.TimeoutSec
	}
	if c.Update.CacheTTLSec < 0 {
		c.Update.CacheTTLSec = 0
	}
}

func (c *Config) applyEnv() {
	raw, ok := os.LookupEnv(InstallRootsEnv)
	if !ok || strings.TrimSpace(raw) == "" {
		return
	}
	var roots []string
	for _, root := range filepath.SplitList(raw) {
		if root = strings.TrimSpace(root); root != "" {
			roots = append(roots, root)
		}
	}
	if len(roots) > 0 {
		c.InstallRoots = roots
	}
}

// Timeout returns the bound for the release check.
func (u UpdateConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSec) * time.Second
}

// CacheTTL returns how long a fetched release stays fresh. Zero disables the
// cache.
func (u UpdateConfig) CacheTTL() time.Duration {
	return time.Duration(u.CacheTTLSec) * time.Second
}

// OwnerRepo splits Repository into its GitHub owner and name.
func (u UpdateConfig) OwnerRepo() (string, string, error) {
	owner, repo, ok := strings.Cut(strings.TrimSpace(u.Repository), "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("update repository must be owner/name, got %q", u.Repository)
	}
	return owner, repo, nil
}
