// Command casm is the assembler's command line front end: it resolves
// input names to ".as" sources and drives each one through asm.Build.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oscasm/casm/asm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "casm <file1> [<file2> ...]",
		Short:   "Two-pass assembler for the course instruction set",
		Version: Version(),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code := asm.Build(cmd.OutOrStdout(), args)
			if code != 0 {
				return fmt.Errorf("exit %d", code)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return cmd
}
