package launch

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/kballard/go-shellquote"
)

// placeholders are replaced by the project file inside association commands.
var placeholders = []string{"%1", "%L", "%l"}

// associationArgv turns a registered open command into argv for file. When
// the command names no placeholder the file is appended.
func associationArgv(goos, command, file string) ([]string, error) {
	line := strings.TrimSpace(command)
	if line == "" {
		return nil, fmt.Errorf("empty association command")
	}
	if goos == "windows" {
		// Registry commands use bare backslashes as path separators.
		line = strings.ReplaceAll(line, `\`, `\\`)
	}

	words, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("parse association command %q: %w", command, err)
	}

	// One pass, so placeholder text inside file is left alone.
	replacer := strings.NewReplacer("%1", file, "%L", file, "%l", file)

	argv := make([]string, 0, len(words)+1)
	substituted := false
	for _, word := range words {
		if word == "%*" {
			continue
		}
		if hasPlaceholder(word) {
			word = replacer.Replace(word)
			substituted = true
		}
		argv = append(argv, word)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("association command %q has no program", command)
	}
	if !substituted {
		argv = append(argv, file)
	}
	return argv, nil
}

func hasPlaceholder(word string) bool {
	for _, ph := range placeholders {
		if strings.Contains(word, ph) {
			return true
		}
	}
	return false
}

func hostArgv(command, file string) ([]string, error) {
	return associationArgv(runtime.GOOS, command, file)
}
