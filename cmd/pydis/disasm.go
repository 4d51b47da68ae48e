package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/pydis/bytecode"
)

func newDisasmCmd(opts *options) *cobra.Command {
	var (
		version   string
		indent    int
		noRecurse bool
		noHeader  bool
	)

	cmd := &cobra.Command{
		Use:   "disasm FILE...",
		Short: "Print instruction listings of code units",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &bytecode.Disassembler{
				W:       cmd.OutOrStdout(),
				Recurse: opts.cfg.Disasm.Recurse && !noRecurse,
				Header:  opts.cfg.Disasm.Header && !noHeader,
			}
			if !cmd.Flags().Changed("indent") {
				indent = opts.cfg.Disasm.Indent
			}
			if indent < 0 {
				return fmt.Errorf("--indent must not be negative, got %d", indent)
			}

			for _, path := range args {
				m, err := readModule(path)
				if err != nil {
					return err
				}
				d.Version, err = opts.resolveVersion(version, m)
				if err != nil {
					return err
				}

				if len(args) > 1 {
					fmt.Fprintf(d.W, "# %s\n", path)
				}
				log.Infof("disassembling %s as %s", path, d.Version)
				if err := d.Disassemble(m.Code, indent); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&version, "version", "", "runtime version X.Y (default: from the file, then the configuration)")
	f.IntVar(&indent, "indent", 0, "base indent level")
	f.BoolVar(&noRecurse, "no-recurse", false, "do not list nested code units")
	f.BoolVar(&noHeader, "no-header", false, "omit the code unit header")
	return cmd
}
