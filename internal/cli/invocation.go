package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"mxmodeler/internal/dispatch"
)

// options is everything read from the command line. Invocation carries the
// dispatch intent; the remaining fields only shape output and configuration.
type options struct {
	Invocation dispatch.Invocation
	JSON       bool
	NoBanner   bool
	ConfigPath string
}

// usageError is a command line the flag parser rejected. It is answered with
// help text and exit code 0.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

type flagDoc struct {
	short, long, arg, text string
}

var flagDocs = []flagDoc{
	{"u", "update", "", "Checks if there is an update for mx-modeler"},
	{"l", "list", "", "List all modeler versions"},
	{"c", "check", "", "Check the modeler version for a .mpr file"},
	{"v", "version", "string", "Use a specific version to open the project. Usage: '-v 6.0.0 <project.mpr>'"},
	{"h", "help", "", "Shows this help screen"},
	{"", "json", "", "Output machine-readable JSON"},
	{"", "no-banner", "", "Do not print the banner"},
	{"", "config", "path", "Path to the configuration file"},
}

func newFlagSet(opts *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("mx-modeler", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	inv := &opts.Invocation
	fs.BoolVarP(&inv.WantsUpdate, "update", "u", false, flagDocs[0].text)
	fs.BoolVarP(&inv.WantsList, "list", "l", false, flagDocs[1].text)
	fs.BoolVarP(&inv.WantsCheck, "check", "c", false, flagDocs[2].text)
	fs.StringVarP(&inv.ExplicitVersion, "version", "v", "", flagDocs[3].text)
	fs.BoolVarP(&inv.WantsHelp, "help", "h", false, flagDocs[4].text)
	fs.BoolVar(&opts.JSON, "json", false, flagDocs[5].text)
	fs.BoolVar(&opts.NoBanner, "no-banner", false, flagDocs[6].text)
	fs.StringVar(&opts.ConfigPath, "config", "", flagDocs[7].text)
	return fs
}

// parseArgs turns raw arguments into options. It never validates meaning;
// that is left to dispatch.Decide.
func parseArgs(args []string) (options, error) {
	var opts options
	fs := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		return opts, &usageError{err: err}
	}
	if files := fs.Args(); len(files) > 0 {
		opts.Invocation.TargetFiles = files
	}
	return opts, nil
}

func writeUsage(w io.Writer, accent func(string) string) {
	fmt.Fprintf(w, " Usage : %s\n\n Options:\n", accent("mx-modeler [OPTIONS] [<file.mpk>]"))
	for _, d := range flagDocs {
		name := "    --" + d.long
		if d.short != "" {
			name = "-" + d.short + ", --" + d.long
		}
		if d.arg != "" {
			name += " " + d.arg
		}
		fmt.Fprintf(w, "   %-24s %s\n", name, d.text)
	}
	fmt.Fprintln(w)
}
