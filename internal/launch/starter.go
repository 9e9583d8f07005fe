package launch

import (
	"os/exec"
)

// StartOptions tunes how a detached process is spawned.
type StartOptions struct {
	Dir string
	Env []string
}

// Starter spawns a process without waiting for it.
type Starter interface {
	Start(command string, args []string, opts StartOptions) error
}

// ExecStarter starts real processes, detached from the current session so
// they outlive mx-modeler.
type ExecStarter struct{}

func (ExecStarter) Start(command string, args []string, opts StartOptions) error {
	cmd := exec.Command(command, args...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = append(cmd.Environ(), opts.Env...)
	}
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

var _ Starter = ExecStarter{}
