// Command mjc checks MicroJava programs.
//
//	mjc check Sample.mj        report lexical, syntax and semantic errors
//	mjc tokens Sample.mj       dump the token stream
//	mjc trace Sample.mj        print the operations the parser hands to a code generator
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mjc/pkg/compiler"
	"mjc/pkg/config"
	"mjc/pkg/logging"
	"mjc/pkg/utils"
)

// errFailed is returned by commands whose input had errors. The diagnostics
// are printed already.
var errFailed = errors.New("compilation failed")

// globalFlags are shared by every subcommand.
type globalFlags struct {
	cfgFile  string
	entry    string
	recovery string
	format   string
	noColor  bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	f := &globalFlags{}
	root := &cobra.Command{
		Use:   "mjc",
		Short: "mjc - MicroJava compiler front end",
		Long: `mjc scans, parses and type-checks MicroJava programs.

Commands:
  check   Report lexical, syntax and semantic errors
  tokens  Dump the token stream of a source file
  trace   Print the code generator calls for a source file
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	pf.StringVar(&f.entry, "entry", "", "name of the required entry method")
	pf.StringVar(&f.recovery, "recovery", "", "syntax error recovery: none or sync")
	pf.StringVar(&f.format, "format", "", "diagnostic output: text or yaml")
	pf.BoolVar(&f.noColor, "no-color", false, "disable coloured output")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log debug records to stderr")

	root.AddCommand(newCheckCmd(f), newTokensCmd(f), newTraceCmd(f))
	return root
}

// session is the resolved configuration of one command run.
type session struct {
	cfg  *config.Config
	log  *slog.Logger
	opts compiler.Options
	out  *renderer
}

// setup loads the config file and applies the command line flags on top.
func (f *globalFlags) setup(cmd *cobra.Command) (*session, error) {
	cfg := config.Default()
	if f.cfgFile != "" {
		var err error
		if cfg, err = config.Load(f.cfgFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("entry") {
		cfg.Compiler.EntryPoint = f.entry
	}
	if flags.Changed("recovery") {
		cfg.Compiler.Recovery = f.recovery
	}
	if flags.Changed("format") {
		cfg.Output.Format = f.format
	}
	if f.noColor {
		cfg.Output.Color = false
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logging.New(cfg.Log, cmd.ErrOrStderr())
	opts := cfg.ParserOptions()
	opts.Logger = log
	return &session{
		cfg:  cfg,
		log:  log,
		opts: opts,
		out:  newRenderer(cmd.OutOrStdout(), cfg.Output.Color),
	}, nil
}

// source reads one input file.
func (s *session) source(path string) (string, error) {
	src, full, err := utils.ReadSource(path)
	if err != nil {
		return "", err
	}
	s.log.Debug("read source", "file", full, "bytes", len(src))
	return src, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errFailed):
		return 1
	}
	fmt.Fprintln(stderr, "mjc:", err)
	return 2
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
