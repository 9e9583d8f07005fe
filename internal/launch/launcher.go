// Package launch starts Modeler processes. Launching is one-way: the child
// is never waited on and its exit status is never observed.
package launch

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
)

// Launcher requests Modeler processes through a Starter.
type Launcher struct {
	Starter Starter
	Logger  *log.Logger
}

// New returns a launcher backed by real processes.
func New(logger *log.Logger) *Launcher {
	return &Launcher{Starter: ExecStarter{}, Logger: logger}
}

// Run starts the Modeler at installPath, opening file when it is non-empty.
func (l *Launcher) Run(ctx context.Context, installPath, file string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var args []string
	if file != "" {
		args = []string{file}
	}
	l.logf("launch modeler=%s args=%q", installPath, args)
	if err := l.starter().Start(installPath, args, StartOptions{Dir: filepath.Dir(installPath)}); err != nil {
		return fmt.Errorf("start %s: %w", installPath, err)
	}
	return nil
}

// RunViaAssociation opens file with the platform's registered command,
// leaving version selection to it.
func (l *Launcher) RunViaAssociation(ctx context.Context, command, file string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	argv, err := hostArgv(command, file)
	if err != nil {
		return err
	}
	l.logf("launch association=%q argv=%q", command, argv)
	if err := l.starter().Start(argv[0], argv[1:], StartOptions{Dir: filepath.Dir(file)}); err != nil {
		return fmt.Errorf("start %s: %w", argv[0], err)
	}
	return nil
}

func (l *Launcher) starter() Starter {
	if l.Starter == nil {
		return ExecStarter{}
	}
	return l.Starter
}

func (l *Launcher) logf(format string, args ...any) {
	if l.Logger != nil {
		l.Logger.Printf(format, args...)
	}
}
