package commands

import (
	"os"
	"strings"

	"weft/internal/identity"
)

// readIdentityArg parses arg as a path to an identity file, falling back to
// treating it as a literal textual identity.
func readIdentityArg(arg string) (*identity.Identity, error) {
	if b, err := os.ReadFile(arg); err == nil {
		return identity.ParseIdentity(strings.TrimSpace(string(b)))
	}
	return identity.ParseIdentity(strings.TrimSpace(arg))
}

// identityFromArgs resolves an optional identity argument, defaulting to the
// stored public identity.
func identityFromArgs(args []string) (*identity.Identity, error) {
	if len(args) == 1 {
		return readIdentityArg(args[0])
	}
	return newStore().LoadPublic()
}
