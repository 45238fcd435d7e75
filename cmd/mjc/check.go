package main

import (
	"github.com/spf13/cobra"

	"mjc/pkg/compiler"
)

func newCheckCmd(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.mj>...",
		Short: "Report lexical, syntax and semantic errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.setup(cmd)
			if err != nil {
				return err
			}
			return runCheck(s, args)
		},
	}
}

func runCheck(s *session, files []string) error {
	var reports []report
	failed := false
	for _, file := range files {
		src, err := s.source(file)
		if err != nil {
			return err
		}
		res, err := compiler.Compile(src, nil, s.opts)
		if err != nil {
			failed = true
		}
		if s.cfg.Output.Format == "yaml" {
			reports = append(reports, newReport(file, res))
			continue
		}
		s.out.result(file, res)
	}
	if reports != nil {
		if err := writeYAML(s.out.w, reports); err != nil {
			return err
		}
	}
	if failed {
		return errFailed
	}
	return nil
}
