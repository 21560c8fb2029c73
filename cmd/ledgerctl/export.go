package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "dump the ledger in its stored JSON layout" }
func (*exportCmd) Usage() string {
	return `ledgerctl export [-o <file>]

  Writes both collections as one JSON object keyed by their storage keys.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write to this file instead of stdout.")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer s.close()

	snapshot, err := s.store.Snapshot()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	out := stdout
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		out = f
	}

	if err := writeJSON(out, snapshot); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
