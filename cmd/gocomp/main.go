// gocomp builds block and item definition documents from components.
//
// Subcommands:
//
//	gocomp build  [--config f] [--manifest f] [--out dir] [--watch] [--keep-going] [--jobs n] [--dry-run]
//	gocomp list   [--config f]
//	gocomp schema [--config f] [--color m] <component>
//	gocomp render [--config f] [--props json] [--nested] [--color m] <component>
//	gocomp check  [--config f] [--props json] <component>
//
// The config file comes from --config or GOCOMP_CONFIG; see package config.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var ec exitCoder
		if errors.As(err, &ec) {
			os.Exit(ec.ExitCode())
		}
		os.Exit(1)
	}
}

type exitCoder interface{ ExitCode() int }

// usageError makes main exit with status 2.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }
func (e usageError) ExitCode() int { return 2 }

// parseFlags parses args into fs. Parse failures other than a help request
// are usage errors.
func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return usageError{fmt.Sprintf("%s: %v", fs.Name(), err)}
	}
	return nil
}

func run(args []string) error {
	if len(args) < 1 {
		usage()
		return usageError{"missing subcommand"}
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "build":
		return buildCmd(rest)
	case "list":
		return listCmd(rest)
	case "schema":
		return schemaCmd(rest)
	case "render":
		return renderCmd(rest)
	case "check":
		return checkCmd(rest)
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return usageError{fmt.Sprintf("unknown subcommand %q", sub)}
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `gocomp: component templating for block and item definitions

Usage:
  gocomp build  [--config f] [--manifest f] [--out dir] [--watch] [--keep-going] [--jobs n] [--dry-run]
  gocomp list   [--config f]
  gocomp schema [--config f] [--color m] <component>
  gocomp render [--config f] [--props json] [--nested] [--color m] <component>
  gocomp check  [--config f] [--props json] <component>`)
}
