package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mjc/pkg/compiler"
)

func newTokensCmd(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file.mj>",
		Short: "Dump the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.setup(cmd)
			if err != nil {
				return err
			}
			src, err := s.source(args[0])
			if err != nil {
				return err
			}

			tokens, errs := compiler.Lex(src)
			w := cmd.OutOrStdout()
			for _, tok := range tokens {
				fmt.Fprintln(w, tok)
			}
			fmt.Fprintf(w, "Tokens (%d)\n", len(tokens))

			s.out.diagnostics(args[0], errs)
			if len(errs) > 0 {
				return errFailed
			}
			return nil
		},
	}
}
