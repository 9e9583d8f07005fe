package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the user-level mx-modeler directory.
const HomeEnv = "MX_MODELER_HOME"

// UserPaths captures canonical user-level locations for mx-modeler.
type UserPaths struct {
	Root        string
	ConfigFile  string
	LogsDir     string
	UpdateCache string
}

// Resolve determines the user-level directory from MX_MODELER_HOME or the
// home directory. Nothing is created on disk.
func Resolve() (UserPaths, error) {
	if override, ok := os.LookupEnv(HomeEnv); ok && override != "" {
		root, err := filepath.Abs(override)
		if err != nil {
			return UserPaths{}, fmt.Errorf("resolve %s: %w", HomeEnv, err)
		}
		return newUserPaths(root), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return UserPaths{}, fmt.Errorf("detect user home: %w", err)
	}
	return newUserPaths(filepath.Join(home, ".mx-modeler")), nil
}

func newUserPaths(root string) UserPaths {
	return UserPaths{
		Root:        root,
		ConfigFile:  filepath.Join(root, "config.yaml"),
		LogsDir:     filepath.Join(root, "logs"),
		UpdateCache: filepath.Join(root, "update_cache.json"),
	}
}

// EnsureLogsDir creates the logs directory.
func (p UserPaths) EnsureLogsDir() error {
	if err := os.MkdirAll(p.LogsDir, 0o755); err != nil {
		return fmt.Errorf("create logs dir: %w", err)
	}
	return nil
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
