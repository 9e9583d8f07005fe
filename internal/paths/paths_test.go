package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveHonoursHomeEnv(t *testing.T) {
	root := t.TempDir()
	t.Setenv(HomeEnv, root)

	pp, err := Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if pp.Root != root {
		t.Fatalf("root = %s, want %s", pp.Root, root)
	}
	if pp.ConfigFile != filepath.Join(root, "config.yaml") {
		t.Fatalf("config file = %s", pp.ConfigFile)
	}
	if pp.LogsDir != filepath.Join(root, "logs") {
		t.Fatalf("logs dir = %s", pp.LogsDir)
	}
	if _, err := os.Stat(pp.LogsDir); !os.IsNotExist(err) {
		t.Fatal("Resolve must not create directories")
	}
}

func TestResolveDefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnv, "")
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	pp, err := Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if pp.Root != filepath.Join(home, ".mx-modeler") {
		t.Fatalf("root = %s", pp.Root)
	}
}

func TestEnsureLogsDir(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())
	pp, err := Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if err := pp.EnsureLogsDir(); err != nil {
		t.Fatal(err)
	}
	ok, err := DirExists(pp.LogsDir)
	if err != nil || !ok {
		t.Fatalf("logs dir missing: ok=%v err=%v", ok, err)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.mpr")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if ok, err := FileExists(file); err != nil || !ok {
		t.Fatalf("FileExists(file) = %v, %v", ok, err)
	}
	if ok, _ := FileExists(dir); ok {
		t.Fatal("directory reported as file")
	}
	if ok, _ := FileExists(filepath.Join(dir, "missing")); ok {
		t.Fatal("missing path reported as file")
	}
}
