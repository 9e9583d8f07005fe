package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"mxmodeler/internal/dispatch"
	"mxmodeler/internal/mprcheck"
	"mxmodeler/internal/tui"
	"mxmodeler/internal/update"
)

// Launcher starts Modeler processes without waiting for them.
type Launcher interface {
	Run(ctx context.Context, installPath, file string) error
	RunViaAssociation(ctx context.Context, command, file string) error
}

// VersionChecker reads the Modeler version recorded in a project file.
type VersionChecker interface {
	Check(ctx context.Context, file string) (mprcheck.VersionInfo, error)
}

// UpdateNotifier compares the running build with the latest release.
type UpdateNotifier interface {
	Check(ctx context.Context, current string) (update.Info, error)
}

// runner executes the Action chosen for one invocation.
type runner struct {
	out      io.Writer
	mode     tui.OutputMode
	version  string
	env      dispatch.Environment
	files    dispatch.FileResolver
	launcher Launcher
	checker  VersionChecker
	notifier UpdateNotifier
	logger   *log.Logger
}

// execute decides and performs the action for opts, returning the exit code.
func (r *runner) execute(ctx context.Context, opts options) int {
	p := newPrinter(r.out, r.mode)
	if !opts.NoBanner && !p.json() {
		p.banner(r.version)
	}

	r.logf("invocation %+v", opts.Invocation)
	action := dispatch.Decide(opts.Invocation, r.env, r.files)
	r.logf("action %T exit=%d", action, action.ExitCode())

	switch a := action.(type) {
	case dispatch.UpdateCheck:
		return r.checkUpdate(ctx, p)

	case dispatch.ListVersions:
		p.versions(a.Catalog)
		return a.ExitCode()

	case dispatch.Help:
		p.usage()
		return a.ExitCode()

	case dispatch.RunWithVersion:
		file := ""
		if a.File != nil {
			file = a.File.Path
			p.line(" Running %s on Modeler version %s\n\n", p.palette.Highlight(file), p.palette.Highlight(a.Version))
		} else {
			p.line(" Running Modeler version %s\n\n", p.palette.Highlight(a.Version))
		}
		if err := r.launcher.Run(ctx, a.InstallPath, file); err != nil {
			return r.fail(p, fmt.Sprintf("cannot start Modeler version %s: %v", a.Version, err))
		}
		if p.json() {
			p.writeJSON(map[string]any{"launched": a.InstallPath, "version": a.Version, "file": file})
		}
		return a.ExitCode()

	case dispatch.CheckFile:
		return r.checkFile(ctx, p, a)

	case dispatch.RunDefault:
		p.line(" Running %s\n\n", p.palette.Highlight(a.File.Path))
		if err := r.launcher.RunViaAssociation(ctx, a.Command, a.File.Path); err != nil {
			return r.fail(p, fmt.Sprintf("cannot open %s: %v", a.File.Path, err))
		}
		if p.json() {
			p.writeJSON(map[string]any{"launched": a.Command, "file": a.File.Path})
		}
		return a.ExitCode()

	case dispatch.Failure:
		r.logf("failure kind=%s: %s", a.Kind, a.Message)
		p.failure(a)
		return a.ExitCode()
	}

	r.logf("unhandled action %T", action)
	return 1
}

func (r *runner) fail(p printer, msg string) int {
	r.logf("error: %s", msg)
	p.failure(dispatch.Failure{Message: msg, Code: 1})
	return 1
}

// checkUpdate never changes the exit code: a failed lookup is reported and
// the run still succeeds.
func (r *runner) checkUpdate(ctx context.Context, p printer) int {
	var (
		info update.Info
		err  error
	)
	check := func(ctx context.Context) error {
		info, err = r.notifier.Check(ctx, r.version)
		return err
	}

	if p.mode == tui.ModeTUI {
		_ = tui.RunSpinner(ctx, r.out, "Checking for an update", check)
	} else {
		p.line("%s\n", p.palette.Highlight(" Checking for an update"))
		_ = check(ctx)
	}

	if err != nil {
		if p.json() {
			p.writeJSON(map[string]any{"error": map[string]any{
				"kind":    dispatch.KindUpdateCheckFailed,
				"message": err.Error(),
			}})
		} else {
			p.errorLine("cannot check for an update: " + err.Error())
		}
		return 0
	}

	if p.json() {
		p.writeJSON(map[string]any{
			"current":    info.Current,
			"latest":     info.Latest,
			"url":        info.URL,
			"available":  info.Available(),
			"comparable": info.CurrentKnown(),
		})
		return 0
	}
	if !info.CurrentKnown() {
		fmt.Fprintf(r.out, " Latest version is %s; this build (%s) has no version to compare.\n\n",
			p.palette.Accent(info.Latest), info.Current)
		return 0
	}
	if info.Available() {
		where := ""
		if info.URL != "" {
			where = " from " + p.palette.Highlight(info.URL)
		}
		fmt.Fprintf(r.out, "%s%s%s\n\n",
			p.palette.Success(" Update available! Download version "),
			p.palette.Accent(info.Latest),
			where)
		return 0
	}
	fmt.Fprintf(r.out, "%s\n\n", p.palette.Success(" You are running the latest version :-)"))
	return 0
}

func (r *runner) checkFile(ctx context.Context, p printer, a dispatch.CheckFile) int {
	p.line(" Checking the modeler version of %s\n\n", p.palette.Highlight(a.File.Path))

	info, err := r.checker.Check(ctx, a.File.Path)
	if err != nil {
		return r.fail(p, fmt.Sprintf("cannot check %s: %v", a.File.Path, err))
	}

	installed, ok := installedVersion(r.env.Catalog, info)
	if p.json() {
		p.writeJSON(map[string]any{
			"file":              info.File,
			"product_version":   info.ProductVersion,
			"build_version":     info.BuildVersion,
			"installed":         ok,
			"installed_version": installed,
		})
		return a.ExitCode()
	}

	required := info.ProductVersion
	if info.BuildVersion != "" && info.BuildVersion != info.ProductVersion {
		required += " (build " + info.BuildVersion + ")"
	}
	fmt.Fprintf(r.out, " This project requires Modeler version %s\n", p.palette.Accent(required))
	if ok {
		fmt.Fprintf(r.out, "%s Open it with: %s\n\n",
			p.palette.Success(" Installed."),
			p.palette.Highlight(fmt.Sprintf("mx-modeler -v %s %s", installed, quoteArg(a.File.Path))))
		return a.ExitCode()
	}
	fmt.Fprintf(r.out, "%s\n\n", p.palette.Error(" This version is not installed."))
	return a.ExitCode()
}

// installedVersion finds the catalog entry matching a project's recorded
// version: the exact build first, then the product version, then the
// newest build of that product version.
func installedVersion(catalog dispatch.Catalog, info mprcheck.VersionInfo) (string, bool) {
	for _, v := range []string{info.BuildVersion, info.ProductVersion} {
		if v == "" {
			continue
		}
		if _, ok := catalog.Lookup(v); ok {
			return v, true
		}
	}
	if info.ProductVersion == "" {
		return "", false
	}
	prefix := info.ProductVersion + "."
	for i := len(catalog.Versions) - 1; i >= 0; i-- {
		if strings.HasPrefix(catalog.Versions[i], prefix) {
			return catalog.Versions[i], true
		}
	}
	return "", false
}

func quoteArg(s string) string {
	if strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}

func (r *runner) logf(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}
