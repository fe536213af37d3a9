// Package input opens the byte stream a scan reads from.
//
// A path selects a named file; an empty path or "-" selects standard input.
// A named file that cannot be opened is reported as a domain.InputError before
// any byte is read, so callers never scan a half-opened source.
//
// Digest tees a stream through BLAKE2b-256 so a run can report a short
// fingerprint of exactly the bytes it consumed.
package input
