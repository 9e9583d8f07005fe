//go:build !windows

package modelers

// Without a registry there is nothing to ask; configure association_command
// to run elsewhere.
func platformAssociation() (string, error) {
	return "", ErrNoAssociation
}
