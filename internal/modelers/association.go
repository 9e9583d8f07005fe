package modelers

import (
	"context"
	"errors"
	"strings"

	"mxmodeler/internal/dispatch"
)

// ErrNoAssociation means the platform has no handler for .mpr files.
var ErrNoAssociation = errors.New("cannot find an association for .mpr files; is the Mendix Modeler installed?")

// AssociationResolver finds the command the platform uses to open project
// files. Override, when set, replaces the platform lookup.
type AssociationResolver struct {
	Override string
}

// Resolve returns the association; Err is set when none exists.
func (r AssociationResolver) Resolve(ctx context.Context) dispatch.Association {
	if cmd := strings.TrimSpace(r.Override); cmd != "" {
		return dispatch.Association{Command: cmd}
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return dispatch.Association{Err: err}
		}
	}
	cmd, err := platformAssociation()
	if err != nil {
		return dispatch.Association{Err: err}
	}
	return dispatch.Association{Command: cmd}
}
