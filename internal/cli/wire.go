package cli

import (
	"context"
	"io"
	"log"

	"github.com/google/go-github/v66/github"

	"mxmodeler/internal/config"
	"mxmodeler/internal/dispatch"
	"mxmodeler/internal/launch"
	"mxmodeler/internal/logx"
	"mxmodeler/internal/modelers"
	"mxmodeler/internal/mprcheck"
	"mxmodeler/internal/paths"
	"mxmodeler/internal/tui"
	"mxmodeler/internal/update"
)

// newRunner loads configuration and builds the environment a decision is
// made against. Catalog and association are resolved here, once, before
// anything is decided.
func newRunner(ctx context.Context, opts options, out io.Writer) (*runner, func(), error) {
	up, err := paths.Resolve()
	if err != nil {
		return nil, nil, err
	}

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = up.ConfigFile
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	logger, closer, err := logx.New(up)
	if err != nil {
		logger, closer = logx.Discard()
	}
	logger.Printf("mx-modeler %s config=%s roots=%v", Version, cfgPath, cfg.InstallRoots)

	env := dispatch.Environment{
		Catalog:     modelers.Provider{Roots: cfg.InstallRoots}.Catalog(ctx),
		Association: modelers.AssociationResolver{Override: cfg.AssociationCommand}.Resolve(ctx),
	}
	if env.Catalog.Err != nil {
		logger.Printf("catalog: %v", env.Catalog.Err)
	}
	if env.Association.Err != nil {
		logger.Printf("association: %v", env.Association.Err)
	}

	r := &runner{
		out:      out,
		mode:     tui.DetectMode(out, opts.JSON),
		version:  Version,
		env:      env,
		files:    dispatch.FSResolver{},
		launcher: launch.New(logger),
		checker:  mprcheck.Checker{Logger: logger},
		notifier: newNotifier(cfg, up, logger),
		logger:   logger,
	}
	return r, func() { _ = closer.Close() }, nil
}

func newNotifier(cfg config.Config, up paths.UserPaths, logger *log.Logger) UpdateNotifier {
	owner, repo, err := cfg.Update.OwnerRepo()
	if err != nil {
		return brokenNotifier{err: err}
	}
	return &update.Notifier{
		Client:    github.NewClient(nil),
		Owner:     owner,
		Repo:      repo,
		Timeout:   cfg.Update.Timeout(),
		CachePath: up.UpdateCache,
		CacheTTL:  cfg.Update.CacheTTL(),
		Logger:    logger,
	}
}

// brokenNotifier reports a configuration error when an update check is
// requested, leaving every other action usable.
type brokenNotifier struct {
	err error
}

func (b brokenNotifier) Check(_ context.Context, current string) (update.Info, error) {
	return update.Info{Current: current}, b.err
}
