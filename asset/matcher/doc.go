// Package matcher selects the unique sources of asset records that match a
// name substring and a set of allowed types.
package matcher
