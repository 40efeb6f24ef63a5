// Package conv provides small helpers to convert between arbitrary Go
// values.  The primary helper Convert performs a JSON marshal/unmarshal
// round-trip which is sufficient for coercing tool argument maps into their
// typed counterparts.
package conv
