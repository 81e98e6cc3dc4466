// Package commands defines the weft-idtool CLI.
//
// Commands
//
//   - generate   Create a new identity and store it under the home dir
//   - info       Print address, type and fingerprint of an identity
//   - validate   Re-run the proof of work and check the address binding
//   - sign       Sign a file with the stored identity
//   - verify     Verify a file signature against an identity
//
// Identity arguments accept either a path to a file holding the textual
// form or the textual form itself.
package commands
