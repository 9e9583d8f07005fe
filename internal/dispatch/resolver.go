package dispatch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExtensionSet lists the file extensions a resolver accepts, dot included.
type ExtensionSet []string

var (
	// DefaultExtensions is accepted when opening a project.
	DefaultExtensions = ExtensionSet{".mpr", ".mpk"}
	// CheckExtensions is accepted when inspecting a project's version.
	CheckExtensions = ExtensionSet{".mpr"}
)

// Contains reports exact membership of ext.
func (s ExtensionSet) Contains(ext string) bool {
	for _, candidate := range s {
		if candidate == ext {
			return true
		}
	}
	return false
}

func (s ExtensionSet) String() string {
	return strings.Join(s, "/")
}

// ResolvedFile is a validated project file.
type ResolvedFile struct {
	Path string `json:"path"`
	Ext  string `json:"ext"`
}

// ValidationKind classifies a ValidationError.
type ValidationKind string

const (
	NotFound       ValidationKind = "not_found"
	WrongExtension ValidationKind = "wrong_extension"
)

// ValidationError explains why a path was rejected.
type ValidationError struct {
	Kind    ValidationKind
	Path    string
	Allowed ExtensionSet
	Err     error
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case WrongExtension:
		return fmt.Sprintf("the specified file needs to be of type %s, %q is not a valid file", e.Allowed, e.Path)
	default:
		return fmt.Sprintf("cannot find/read file %s", e.Path)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FileResolver validates a path argument against an extension policy. Every
// failure is returned as a *ValidationError.
type FileResolver interface {
	Resolve(path string, allowed ExtensionSet) (ResolvedFile, error)
}

// FSResolver resolves paths against the filesystem. Relative paths are
// joined to Dir, or to the working directory when Dir is empty.
type FSResolver struct {
	Dir string
}

// Resolve implements FileResolver.
func (r FSResolver) Resolve(path string, allowed ExtensionSet) (ResolvedFile, error) {
	abs, err := r.absolute(path)
	if err != nil {
		return ResolvedFile{}, &ValidationError{Kind: NotFound, Path: path, Allowed: allowed, Err: err}
	}

	if _, err := os.Stat(abs); err != nil {
		return ResolvedFile{}, &ValidationError{Kind: NotFound, Path: path, Allowed: allowed, Err: err}
	}

	ext := filepath.Ext(abs)
	if !allowed.Contains(ext) {
		return ResolvedFile{}, &ValidationError{Kind: WrongExtension, Path: path, Allowed: allowed}
	}

	return ResolvedFile{Path: abs, Ext: ext}, nil
}

func (r FSResolver) absolute(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	if r.Dir != "" {
		return filepath.Join(r.Dir, path), nil
	}
	return filepath.Abs(path)
}

var _ FileResolver = FSResolver{}
