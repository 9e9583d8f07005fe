package dispatch

// Action is the single thing a run will do. It is produced by Decide and
// consumed once by the caller.
type Action interface {
	ExitCode() int
	action()
}

// ErrorKind classifies a Failure.
type ErrorKind string

const (
	KindPlatformPrecondition ErrorKind = "platform_precondition"
	KindCatalogUnavailable   ErrorKind = "catalog_unavailable"
	KindFileNotFound         ErrorKind = "file_not_found"
	KindWrongExtension       ErrorKind = "wrong_extension"
	KindVersionNotFound      ErrorKind = "version_not_found"
	KindUpdateCheckFailed    ErrorKind = "update_check_failed"
	KindUsage                ErrorKind = "usage"
)

// UpdateCheck asks for a comparison against the latest published release.
type UpdateCheck struct{}

// ListVersions prints every version in the catalog.
type ListVersions struct {
	Catalog Catalog
}

// Help prints usage.
type Help struct{}

// RunWithVersion launches a specific installation, optionally with a project.
type RunWithVersion struct {
	Version     string
	InstallPath string
	File        *ResolvedFile
}

// CheckFile reports which Modeler version a project file requires.
type CheckFile struct {
	File ResolvedFile
}

// RunDefault opens a project through the platform's file association.
type RunDefault struct {
	Command string
	File    ResolvedFile
}

// Failure is a terminal message with a defined exit code.
type Failure struct {
	Kind    ErrorKind
	Message string
	Code    int
	// Suggestions holds nearby catalog versions for KindVersionNotFound.
	Suggestions []string
}

func (UpdateCheck) ExitCode() int    { return 0 }
func (ListVersions) ExitCode() int   { return 0 }
func (Help) ExitCode() int           { return 0 }
func (RunWithVersion) ExitCode() int { return 0 }
func (CheckFile) ExitCode() int      { return 0 }
func (RunDefault) ExitCode() int     { return 0 }
func (f Failure) ExitCode() int      { return f.Code }

func (UpdateCheck) action()    {}
func (ListVersions) action()   {}
func (Help) action()           {}
func (RunWithVersion) action() {}
func (CheckFile) action()      {}
func (RunDefault) action()     {}
func (Failure) action()        {}
