// Package modelers discovers installed Modeler versions and the platform's
// default handler for project files.
package modelers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/hashicorp/go-version"

	"mxmodeler/internal/dispatch"
	"mxmodeler/internal/paths"
)

// binaryNames are tried in order inside <root>/<version>/modeler.
var binaryNames = []string{"studiopro", "Modeler"}

// Provider scans install roots for versioned Modeler installations. Each
// child directory of a root whose name parses as a version and that holds a
// Modeler executable becomes a catalog entry.
type Provider struct {
	Roots []string
}

// Installation is one discovered Modeler.
type Installation struct {
	Version string
	Path    string
}

// Catalog implements the version provider contract. Discovery failure is
// reported through Catalog.Err, never as a panic.
func (p Provider) Catalog(ctx context.Context) dispatch.Catalog {
	installs, err := p.Discover(ctx)
	if err != nil {
		return dispatch.Catalog{Err: err}
	}

	catalog := dispatch.Catalog{
		Versions: make([]string, 0, len(installs)),
		Modelers: make(map[string]string, len(installs)),
	}
	for _, inst := range installs {
		catalog.Versions = append(catalog.Versions, inst.Version)
		catalog.Modelers[inst.Version] = inst.Path
	}
	return catalog
}

// Discover returns installations ordered by ascending version. When the same
// version appears under several roots the first root wins.
func (p Provider) Discover(ctx context.Context) ([]Installation, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(p.Roots) == 0 {
		return nil, fmt.Errorf("no Modeler install roots configured")
	}

	var (
		found    []Installation
		parsed   = map[string]*version.Version{}
		readable int
	)
	for _, root := range p.Roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if ok, err := paths.DirExists(root); err != nil || !ok {
			continue
		}
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		readable++

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			name := entry.Name()
			if _, seen := parsed[name]; seen {
				continue
			}
			v, err := version.NewVersion(name)
			if err != nil {
				continue
			}
			bin, ok := locateBinary(filepath.Join(root, name))
			if !ok {
				continue
			}
			parsed[name] = v
			found = append(found, Installation{Version: name, Path: bin})
		}
	}

	if readable == 0 {
		return nil, fmt.Errorf("cannot find any Modeler installation directories (searched %s)", strings.Join(p.Roots, ", "))
	}

	sort.SliceStable(found, func(i, j int) bool {
		return parsed[found[i].Version].LessThan(parsed[found[j].Version])
	})
	return found, nil
}

func locateBinary(dir string) (string, bool) {
	for _, base := range binaryNames {
		path := filepath.Join(dir, "modeler", executableName(base))
		if ok, err := paths.FileExists(path); err == nil && ok {
			return path, true
		}
	}
	return "", false
}

func executableName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}
