package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	textmcp "github.com/robbyt/go-textmcp"
)

type processCmd struct {
	Text  string `arg:"" optional:"" help:"Text to process"`
	Stdin bool   `help:"Read the text from stdin instead of the argument"`
}

func (p *processCmd) Run(rc *runContext) error {
	text := p.Text
	if p.Stdin {
		if text != "" {
			return errors.New("cannot combine a text argument with --stdin")
		}
		b, err := io.ReadAll(rc.stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(b)
	}

	rec, err := textmcp.ProcessText(text)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(rc.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
