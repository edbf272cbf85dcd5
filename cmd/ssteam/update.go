package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/electrified/ss-rom-hack/team"
	"github.com/electrified/ss-rom-hack/teamrom"
)

type updateCommand struct {
	OutFile string `short:"o" long:"outfile" description:"Write the updated ROM to this path" required:"true"`
	Args    struct {
		ROM  string `positional-arg-name:"rom" description:"Original ROM image" required:"true"`
		JSON string `positional-arg-name:"json" description:"Edited team data document" required:"true"`
	} `positional-args:"yes"`
}

func (c *updateCommand) Execute(args []string) error {
	rom, err := os.ReadFile(c.Args.ROM)
	if err != nil {
		return fmt.Errorf("failed to read ROM: %w", err)
	}

	jsonData, err := os.ReadFile(c.Args.JSON)
	if err != nil {
		return fmt.Errorf("failed to read team data: %w", err)
	}

	var doc team.Doc
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return fmt.Errorf("failed to parse team data JSON: %w", err)
	}

	newRom, warnings, err := teamrom.Update(rom, &doc)
	if err != nil {
		return fmt.Errorf("failed to update ROM: %w", err)
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}

	if err := os.WriteFile(c.OutFile, newRom, 0o644); err != nil {
		return fmt.Errorf("failed to write updated ROM: %w", err)
	}
	return nil
}

func addUpdateCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("update",
		"Apply edited JSON team data back into a ROM",
		"Re-encodes all three team regions from an edited JSON document and "+
			"writes a new ROM image with the region pointer table updated "+
			"accordingly.",
		&updateCommand{})
	if err != nil {
		panic(err)
	}
}
