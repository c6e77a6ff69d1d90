package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/viant/baiwen/asset/report"
)

// Run is the entry point for the CLI.  The function is separated from the main
// package to keep the command usable from tests as well.
func Run(args []string) {
	// version is answered before parsing so that required options can be omitted
	if hasVersionFlag(args) {
		fmt.Println(versionLine())
		return
	}
	opts, err := parseArgs(args)
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			fmt.Println(flagErr.Message)
			return
		}
		log.Fatalf("%v", err)
	}
	if err = opts.Match(context.Background(), os.Stdout, os.Stderr); err != nil {
		log.Fatalf("%v", err)
	}
}

func parseArgs(args []string) (*Options, error) {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "baiwen"
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	opts.explicitType = hasTypeFlag(args)
	return opts, nil
}

func versionLine() string {
	return report.Name + " " + strings.TrimPrefix(report.Version, "v")
}

// hasVersionFlag searches the raw argument list for -V/--version, stopping at
// the "--" terminator.
func hasVersionFlag(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-V", "--version":
			return true
		}
	}
	return false
}

// hasTypeFlag reports whether --type was supplied, even with an empty value,
// so that an explicit empty list is validated rather than defaulted.
func hasTypeFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "--type" || strings.HasPrefix(a, "--type=") {
			return true
		}
	}
	return false
}
