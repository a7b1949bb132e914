// Package fingerprint derives stable identifiers from sets of key/value
// components.
//
// Generate sorts the non-empty components, joins them with "|", hashes the
// result with SHA-256 and returns the first 16 bytes as a 32-character hex
// string. The validation engine feeds it the canonical "field=value" pairs of a
// circuit, so two circuits that differ only in their ID or in field order share
// a fingerprint and therefore a cache entry.
//
//	fp := fingerprint.Generate(c.Canonical())
package fingerprint
