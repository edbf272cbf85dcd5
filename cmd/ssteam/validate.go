package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/electrified/ss-rom-hack/team"
	"github.com/electrified/ss-rom-hack/teamrom"
)

type validateCommand struct {
	Args struct {
		ROM  string `positional-arg-name:"rom" description:"ROM image to validate against" required:"true"`
		JSON string `positional-arg-name:"json" description:"Team data document to validate" required:"true"`
	} `positional-args:"yes"`
}

func (c *validateCommand) Execute(args []string) error {
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

	errs, warnings := teamrom.Validate(rom, &doc)
	for _, w := range warnings {
		fmt.Println("warning:", w)
	}
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, "error:", e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("document failed validation with %d error(s)", len(errs))
	}
	if len(warnings) == 0 {
		fmt.Println("OK: no warnings")
	}
	return nil
}

func addValidateCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("validate",
		"Validate an edited team data document against a ROM",
		"Checks a JSON team document's team counts, string encodability, "+
			"enum values and formation shape against the ROM it would be "+
			"written back into, without modifying anything.",
		&validateCommand{})
	if err != nil {
		panic(err)
	}
}
