package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/electrified/ss-rom-hack/teamrom"
)

type decodeCommand struct {
	OutFile string `short:"o" long:"outfile" description:"Write JSON to this file instead of stdout"`
	Indent  bool   `long:"indent" description:"Indent the JSON output" default:"true"`
	Args    struct {
		ROM string `positional-arg-name:"rom" description:"ROM image to decode" required:"true"`
	} `positional-args:"yes"`
}

func (c *decodeCommand) Execute(args []string) error {
	rom, err := os.ReadFile(c.Args.ROM)
	if err != nil {
		return fmt.Errorf("failed to read ROM: %w", err)
	}

	doc, warnings, err := teamrom.Decode(rom)
	if err != nil {
		return fmt.Errorf("failed to decode team data: %w", err)
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}

	destination := os.Stdout
	if c.OutFile != "" {
		f, err := os.Create(c.OutFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		destination = f
	}

	enc := json.NewEncoder(destination)
	if c.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(doc)
}

func addDecodeCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("decode",
		"Decode team data from a ROM into JSON",
		"Locates the team region pointer table and decodes all three regions "+
			"(national, club, custom) into a JSON document.",
		&decodeCommand{})
	if err != nil {
		panic(err)
	}
}
