package dispatch

// Invocation captures the parsed user intent for a single run.
type Invocation struct {
	WantsUpdate     bool
	WantsList       bool
	WantsHelp       bool
	WantsCheck      bool
	ExplicitVersion string
	TargetFiles     []string
}

// Catalog maps installed Modeler versions to the executable that runs them.
// Err is set when discovery failed; Versions and Modelers are then empty.
type Catalog struct {
	Versions []string          `json:"versions"`
	Modelers map[string]string `json:"modelers"`
	Err      error             `json:"-"`
}

// Available reports whether the catalog loaded.
func (c Catalog) Available() bool {
	return c.Err == nil
}

// Lookup returns the installation path registered for version.
func (c Catalog) Lookup(version string) (string, bool) {
	if c.Err != nil || c.Modelers == nil {
		return "", false
	}
	path, ok := c.Modelers[version]
	return path, ok
}

// Association is the platform's default handler for project files.
type Association struct {
	Command string
	Err     error
}

// Environment bundles the externally discovered state a decision depends on.
// It is built once per process before Decide runs.
type Environment struct {
	Catalog     Catalog
	Association Association
}
