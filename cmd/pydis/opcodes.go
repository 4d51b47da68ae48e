package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/pydis/opcode"
)

func newOpcodesCmd() *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "opcodes",
		Short: "Print the canonical opcode table, or one version's raw opcode map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if version == "" {
				for _, op := range opcode.All() {
					fmt.Fprintf(out, "%3d  %-24s %s\n", int(op), op, opcode.Classify(op))
				}
				return nil
			}

			v, err := opcode.ParseVersion(version)
			if err != nil {
				return err
			}
			for _, m := range v.Map() {
				fmt.Fprintf(out, "%3d  %-24s %s\n", m.Raw, m.Op, opcode.Classify(m.Op))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "runtime version X.Y")
	return cmd
}

func newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the supported runtime versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range opcode.Versions() {
				encoding := "legacy"
				if v.Wordcode() {
					encoding = "wordcode"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-5s %-9s %d opcodes\n", v, encoding, len(v.Map()))
			}
			return nil
		},
	}
}
