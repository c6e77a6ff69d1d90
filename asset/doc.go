// Package asset defines the record model read from asset map documents and
// the closed vocabulary of record types that can be requested on the command
// line.  Labels are validated here, at the edge, so that the matcher only ever
// works with a known, non-empty set of types.
package asset
