package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"mxmodeler/internal/dispatch"
	"mxmodeler/internal/tui"
)

const issuesURL = "https://github.com/JelteLagendijk/mx-modeler/issues"

var bannerArt = [][2]string{
	{`  __  ____   __`, `                    _      _             `},
	{` |  \/  \ \ / /`, `                   | |    | |           `},
	{` | \  / |\ V /`, ` _ __ ___   ___   __| | ___| | ___ _ __  `},
	{` | |\/| | > <`, ` | '_ ` + "`" + ` _ \ / _ \ / _` + "`" + ` |/ _ \ |/ _ \ '__| `},
	{` | |  | |/ . \`, `| | | | | | (_) | (_| |  __/ |  __/ |    `},
	{` |_|  |_/_/ \_\`, `_| |_| |_|\___/ \__,_|\___|_|\___|_|    `},
}

// printer writes human-readable or JSON output for one run.
type printer struct {
	w       io.Writer
	mode    tui.OutputMode
	palette tui.Palette
}

func newPrinter(w io.Writer, mode tui.OutputMode) printer {
	return printer{w: w, mode: mode, palette: tui.PaletteFor(mode)}
}

func (p printer) json() bool { return p.mode == tui.ModeJSON }

func (p printer) banner(version string) {
	fmt.Fprintln(p.w)
	for _, line := range bannerArt {
		fmt.Fprintln(p.w, p.palette.Accent(line[0])+line[1])
	}
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, " Command-line client, version: %s\n", version)
	fmt.Fprintf(p.w, " Issues? Please report them at : %s\n\n", p.palette.Highlight(issuesURL))
}

func (p printer) usage() {
	if p.json() {
		p.writeJSON(map[string]any{"usage": usageText()})
		return
	}
	writeUsage(p.w, p.palette.Accent)
}

func usageText() string {
	var b strings.Builder
	writeUsage(&b, func(s string) string { return s })
	return b.String()
}

func (p printer) errorLine(msg string) {
	fmt.Fprintf(p.w, "%s%s\n\n", p.palette.Error(" Error: "), msg)
}

func (p printer) failure(f dispatch.Failure) {
	if p.json() {
		p.writeJSON(map[string]any{"error": map[string]any{
			"kind":        f.Kind,
			"message":     f.Message,
			"suggestions": f.Suggestions,
		}})
		return
	}
	p.errorLine(f.Message)
	if len(f.Suggestions) > 0 {
		quoted := make([]string, len(f.Suggestions))
		for i, s := range f.Suggestions {
			quoted[i] = p.palette.Highlight(s)
		}
		fmt.Fprintf(p.w, "%s%s%s\n\n", p.palette.Faint(" Did you mean "), strings.Join(quoted, ", "), p.palette.Faint("?"))
	}
}

func (p printer) versions(catalog dispatch.Catalog) {
	if p.json() {
		versions := catalog.Versions
		if versions == nil {
			versions = []string{}
		}
		p.writeJSON(map[string]any{"versions": versions, "modelers": catalog.Modelers})
		return
	}
	fmt.Fprintln(p.w, " The following Modeler versions are found: ")
	fmt.Fprintln(p.w)
	for _, v := range catalog.Versions {
		fmt.Fprintf(p.w, "    %s\n", v)
	}
	fmt.Fprintln(p.w)
}

func (p printer) line(format string, args ...any) {
	if p.json() {
		return
	}
	fmt.Fprintf(p.w, format, args...)
}

func (p printer) writeJSON(v any) {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
