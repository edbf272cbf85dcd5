// Command ssteam is a CLI for reading and editing the team data embedded in
// a Mega Drive soccer-game ROM image.
//
// Usage:
//
//	ssteam <command> [options]
//
// Commands:
//
//	decode    Decode team data from a ROM into JSON
//	validate  Check an edited JSON team document against a ROM
//	update    Apply edited JSON team data back into a ROM
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

var version = "dev"

type globalOptions struct {
	Version func() `short:"V" long:"version" description:"Print version and exit"`
}

func main() {
	var globals globalOptions
	globals.Version = func() {
		fmt.Printf("ssteam %s\n", version)
		os.Exit(0)
	}

	parser := flags.NewParser(&globals, flags.Default)
	parser.Name = "ssteam"
	parser.LongDescription = "A toolkit for reading and editing Mega Drive soccer-game team data"

	addDecodeCommand(parser)
	addValidateCommand(parser)
	addUpdateCommand(parser)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			if flagsErr.Type == flags.ErrCommandRequired {
				parser.WriteHelp(os.Stderr)
				os.Exit(1)
			}
		}
		os.Exit(1)
	}
}
