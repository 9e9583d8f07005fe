//go:build windows

package modelers

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows/registry"
)

func platformAssociation() (string, error) {
	progID, err := readDefaultValue(`.mpr`)
	if err != nil {
		return "", fmt.Errorf("%w (%v)", ErrNoAssociation, err)
	}

	cmd, err := readDefaultValue(progID + `\shell\open\command`)
	if err != nil {
		return "", fmt.Errorf("%w (%s: %v)", ErrNoAssociation, progID, err)
	}
	return cmd, nil
}

func readDefaultValue(path string) (string, error) {
	key, err := registry.OpenKey(registry.CLASSES_ROOT, path, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer key.Close()

	value, _, err := key.GetStringValue("")
	if err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("empty default value for %s", path)
	}
	return value, nil
}
