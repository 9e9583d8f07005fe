// Package dispatch decides what a single mx-modeler run does. Decide is pure:
// everything it needs from the platform arrives through Environment and the
// FileResolver, and the result is a value the caller executes.
package dispatch

import (
	"errors"
	"fmt"
)

// Decide maps an invocation onto exactly one Action. Branch order matters:
// the first matching branch wins.
func Decide(inv Invocation, env Environment, files FileResolver) Action {
	if files == nil {
		files = FSResolver{}
	}

	if env.Association.Err != nil {
		return Failure{Kind: KindPlatformPrecondition, Message: env.Association.Err.Error(), Code: 1}
	}

	if inv.WantsUpdate {
		return UpdateCheck{}
	}

	if inv.WantsList {
		if !env.Catalog.Available() {
			return catalogFailure(env.Catalog)
		}
		return ListVersions{Catalog: env.Catalog}
	}

	// More than one file is a usage mistake, never "run the first one".
	if inv.WantsHelp || len(inv.TargetFiles) > 1 {
		return Help{}
	}

	if inv.ExplicitVersion != "" {
		return decideVersion(inv, env.Catalog, files)
	}

	if inv.WantsCheck && len(inv.TargetFiles) == 1 {
		file, err := files.Resolve(inv.TargetFiles[0], CheckExtensions)
		if err != nil {
			return validationFailure(err)
		}
		return CheckFile{File: file}
	}

	if len(inv.TargetFiles) == 1 {
		file, err := files.Resolve(inv.TargetFiles[0], DefaultExtensions)
		if err != nil {
			return validationFailure(err)
		}
		return RunDefault{Command: env.Association.Command, File: file}
	}

	return Help{}
}

func decideVersion(inv Invocation, catalog Catalog, files FileResolver) Action {
	if !catalog.Available() {
		return catalogFailure(catalog)
	}

	installPath, ok := catalog.Lookup(inv.ExplicitVersion)
	if !ok {
		// Exit code 0 is kept for compatibility with existing scripts.
		return Failure{
			Kind:        KindVersionNotFound,
			Message:     "cannot find specified version: " + inv.ExplicitVersion,
			Code:        0,
			Suggestions: Suggest(inv.ExplicitVersion, catalog, maxSuggestions),
		}
	}

	if len(inv.TargetFiles) == 0 {
		return RunWithVersion{Version: inv.ExplicitVersion, InstallPath: installPath}
	}

	file, err := files.Resolve(inv.TargetFiles[0], DefaultExtensions)
	if err != nil {
		return validationFailure(err)
	}
	return RunWithVersion{Version: inv.ExplicitVersion, InstallPath: installPath, File: &file}
}

func catalogFailure(catalog Catalog) Failure {
	msg := "modeler catalog unavailable"
	if catalog.Err != nil {
		msg = catalog.Err.Error()
	}
	return Failure{Kind: KindCatalogUnavailable, Message: msg, Code: 1}
}

func validationFailure(err error) Failure {
	var verr *ValidationError
	if errors.As(err, &verr) && verr.Kind == WrongExtension {
		return Failure{Kind: KindWrongExtension, Message: verr.Error(), Code: 1}
	}
	return Failure{Kind: KindFileNotFound, Message: fmt.Sprint(err), Code: 1}
}
