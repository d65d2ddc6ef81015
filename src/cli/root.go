package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/eriklarko/truth-table/src/config"
	"github.com/eriklarko/truth-table/src/environment"
	"github.com/eriklarko/truth-table/src/truthtable"
	"github.com/eriklarko/truth-table/src/tui"
	"github.com/spf13/cobra"
)

type options struct {
	configFile string
	debug      bool
	format     string
	verbose    bool
}

// NewRootCommand builds the truthtable command reading from in and writing the
// table to out. Errors and logs go to errOut.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "truthtable [formula]",
		Short: "Prints the truth table of a propositional logic formula",
		Long: `Prints the truth table of a propositional logic formula.

Variables are single uppercase letters A-Z. Operators, from lowest to highest
precedence:
  <->  biconditional
  ->   implication (right-associative)
  |    or
  &    and
  !    not

Without a formula argument, one line is read from stdin.`,
		Example: `  truthtable "P & Q -> R"
  echo '!A | B' | truthtable --format csv`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(errOut, opts.verbose)

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			var formula string
			if len(args) == 1 {
				formula = args[0]
			} else {
				formula, err = tui.NewWithStreams(in, out).AskForFormula(environment.IsInteractive(in, out))
				if err != nil {
					return err
				}
			}

			return run(out, cfg, formula)
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.Flags().StringVar(&opts.configFile, "config", config.DefaultPath, "config file")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "print the tokens and the expression tree instead of the table")
	cmd.Flags().StringVar(&opts.format, "format", config.FormatText, "output format, text or csv")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging on stderr")

	return cmd
}

// Execute runs the command with the process' standard streams.
func Execute() error {
	return ExecuteCommand(NewRootCommand(os.Stdin, os.Stdout, os.Stderr), os.Stderr)
}

// ExecuteCommand runs cmd and reports a failure as a single "Error: ..." line
// on errOut. Nothing is written to the command's output after an error.
func ExecuteCommand(cmd *cobra.Command, errOut io.Writer) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}
	return err
}

func setupLogging(errOut io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level})))
}

// loadConfig reads the config file and lets explicitly set flags win. Only a
// missing default config file is tolerated.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.LoadConfig(opts.configFile)
	} else {
		cfg, err = config.LoadOrDefault(opts.configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("debug") {
		cfg.Debug = opts.debug
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = opts.format
	}
	// validated only now, a flag may fix a bad value from the file
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("loaded config", "path", cfg.Path, "format", cfg.Format, "debug", cfg.Debug)
	return cfg, nil
}

func run(out io.Writer, cfg *config.Config, source string) error {
	formula, err := boolexpr.Compile(source)
	if err != nil {
		return err
	}
	slog.Debug("compiled formula", "formula", source, "tokens", len(formula.Tokens))

	if cfg.Debug {
		return writeDebug(out, formula)
	}

	table, err := truthtable.Generate(formula.Expr, formula.Source)
	if err != nil {
		return err
	}

	symbols := truthtable.Symbols{True: cfg.TrueSymbol, False: cfg.FalseSymbol}
	switch cfg.Format {
	case config.FormatCSV:
		return table.WriteCSV(out, symbols)
	case config.FormatText:
		return table.WriteText(out, symbols)
	default:
		return errors.New("unknown format " + cfg.Format)
	}
}
