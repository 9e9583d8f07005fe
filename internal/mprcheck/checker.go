// Package mprcheck reads the Modeler version a project file was saved with.
// A .mpr file is a SQLite database whose _MetaData table records it.
package mprcheck

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// VersionInfo is the version metadata stored in a project file.
type VersionInfo struct {
	File           string `json:"file"`
	ProductVersion string `json:"product_version"`
	BuildVersion   string `json:"build_version,omitempty"`
}

// Checker inspects project files.
type Checker struct {
	Logger *log.Logger
}

// Check opens file read-only and returns its recorded Modeler version.
func (c Checker) Check(ctx context.Context, file string) (VersionInfo, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return VersionInfo{}, fmt.Errorf("resolve %s: %w", file, err)
	}

	db, err := sql.Open("sqlite", readOnlyDSN(abs))
	if err != nil {
		return VersionInfo{}, fmt.Errorf("open %s: %w", abs, err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	info := VersionInfo{File: abs}
	c.logf("mpr check file=%s", abs)

	row := db.QueryRowContext(ctx, `SELECT _ProductVersion FROM _MetaData LIMIT 1`)
	if err := row.Scan(&info.ProductVersion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return VersionInfo{}, fmt.Errorf("%s has no version metadata", abs)
		}
		return VersionInfo{}, fmt.Errorf("read version from %s: %w", abs, err)
	}
	info.ProductVersion = strings.TrimSpace(info.ProductVersion)
	if info.ProductVersion == "" {
		return VersionInfo{}, fmt.Errorf("%s has an empty product version", abs)
	}

	// Older project formats have no build column.
	var build sql.NullString
	if err := db.QueryRowContext(ctx, `SELECT _BuildVersion FROM _MetaData LIMIT 1`).Scan(&build); err == nil && build.Valid {
		info.BuildVersion = strings.TrimSpace(build.String)
	} else if err != nil {
		c.logf("mpr check file=%s build version unavailable: %v", abs, err)
	}

	return info, nil
}

// readOnlyDSN builds a SQLite URI for abs. Every path segment is escaped so
// '?', '#' and '%' in file names reach SQLite as part of the path.
func readOnlyDSN(abs string) string {
	segments := strings.Split(filepath.ToSlash(abs), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	p := strings.Join(segments, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return "file://" + p + "?mode=ro"
}

func (c Checker) logf(format string, v ...any) {
	if c.Logger == nil {
		return
	}
	c.Logger.Printf(format, v...)
}
