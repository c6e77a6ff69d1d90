// Package cmd implements the baiwen command-line interface.  The command reads
// an asset map document, keeps records whose name contains the requested
// string and whose type is one of the requested types, and prints the unique
// source files those records come from.  Option parsing lives in options.go
// and cli.go, the match run itself in match.go.
package cmd
