package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"mxmodeler/internal/tui"
)

// Version is the build version, set with -ldflags "-X mxmodeler/internal/cli.Version=...".
var Version = "dev"

// Execute runs the root cobra command and exits with the code of the action
// it performed.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := 0
	err := newRootCmd(&code).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func newRootCmd(code *int) *cobra.Command {
	return &cobra.Command{
		Use:   "mx-modeler [OPTIONS] [<file.mpk>]",
		Short: "Open Mendix projects with the right Modeler version",
		Args:  cobra.ArbitraryArgs,
		// -h, -u and -l compete; the dispatcher decides which one wins.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := run(cmd.Context(), args, cmd.OutOrStdout())
			*code = c
			return err
		},
	}
}

// run parses args, wires the collaborators and executes one action. The
// error is reserved for setup failures that happen before any action.
func run(ctx context.Context, args []string, out io.Writer) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	opts, err := parseArgs(args)
	if err != nil {
		var uerr *usageError
		if !errors.As(err, &uerr) {
			return 1, err
		}
		p := newPrinter(out, tui.DetectMode(out, false))
		p.banner(Version)
		p.errorLine(uerr.Error())
		p.usage()
		return 0, nil
	}

	r, cleanup, err := newRunner(ctx, opts, out)
	if err != nil {
		return 1, err
	}
	defer cleanup()

	return r.execute(ctx, opts), nil
}
