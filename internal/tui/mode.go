package tui

import (
	"io"
	"os"
	"runtime"
	"strings"
)

// OutputMode describes how command output should be rendered.
type OutputMode int

const (
	// ModeTUI styles output and animates long-running steps.
	ModeTUI OutputMode = iota
	// ModePlain writes unstyled text.
	ModePlain
	// ModeJSON writes one JSON document per run.
	ModeJSON
)

func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeJSON:
		return "json"
	default:
		return "plain"
	}
}

// DetectMode picks the output mode for out. Anything that is not an
// interactive terminal gets plain text.
func DetectMode(out io.Writer, jsonOutput bool) OutputMode {
	if jsonOutput {
		return ModeJSON
	}
	file, ok := out.(*os.File)
	if !ok {
		return ModePlain
	}
	info, err := file.Stat()
	if err != nil {
		return ModePlain
	}
	if info.Mode()&os.ModeCharDevice == 0 {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}
	if runtime.GOOS != "windows" {
		term := os.Getenv("TERM")
		if term == "" || strings.EqualFold(term, "dumb") {
			return ModePlain
		}
	}
	return ModeTUI
}
