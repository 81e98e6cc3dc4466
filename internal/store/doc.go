// Package store persists the node identity under a home directory.
//
// Two files are kept: identity.secret holds the full textual identity
// including private key material (mode 0600, optionally sealed in a
// passphrase envelope), and identity.public holds the public form. Writes
// go through a temp file and rename so a crash never leaves a torn file.
package store
