package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mjc/pkg/compiler"
)

func newTraceCmd(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <file.mj>",
		Short: "Print the code generator calls for a source file",
		Long: `trace parses a source file with a recording code generator and prints
every call the parser makes, one instruction per line. Forward jumps are
shown as fixup comments once their target is known.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.setup(cmd)
			if err != nil {
				return err
			}
			src, err := s.source(args[0])
			if err != nil {
				return err
			}

			gen := compiler.NewTrace()
			res, err := compiler.Compile(src, gen, s.opts)
			fmt.Fprint(cmd.OutOrStdout(), gen)
			if err != nil {
				s.out.result(args[0], res)
				return errFailed
			}
			return nil
		},
	}
}
