package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/pydis/index"
)

func newIndexCmd(opts *options) *cobra.Command {
	var (
		dbPath  string
		version string
		stats   bool
	)

	cmd := &cobra.Command{
		Use:   "index [FILE...]",
		Short: "Store decoded instructions in a SQLite index",
		Long: `index decodes each FILE and stores its code units and instructions in
a SQLite database. With --stats it prints how often each opcode occurs
across everything indexed so far.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stats && len(args) == 0 {
				return errors.New("nothing to do: pass FILE arguments or --stats")
			}
			if dbPath == "" {
				dbPath = opts.cfg.IndexPath()
			}

			store, err := index.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			for _, path := range args {
				m, err := readModule(path)
				if err != nil {
					return err
				}
				ver, err := opts.resolveVersion(version, m)
				if err != nil {
					return err
				}
				id, err := store.AddUnit(m.Code, ver, "")
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintf(out, "%s %s\n", id, path)
			}

			if !stats {
				return nil
			}
			hist, err := store.OpcodeHistogram()
			if err != nil {
				return err
			}
			for _, c := range hist {
				fmt.Fprintf(out, "%-24s %d\n", c.Name, c.Count)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&dbPath, "db", "", "index database (default: index.path from the configuration)")
	f.StringVar(&version, "version", "", "runtime version X.Y (default: from the file, then the configuration)")
	f.BoolVar(&stats, "stats", false, "print the opcode histogram")
	return cmd
}
