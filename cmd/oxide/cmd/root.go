package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"oxide/internal/config"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "oxide",
	Short: "Oxide - parser toolkit for the Oxide language",
	Long: `Oxide parses a small expression-and-statement language into an AST
and reports every syntax error it finds.

Commands:
  parse   - Parse a file and print its AST or diagnostics
  tokens  - Print the token stream with positions
  verify  - Check the parser against the reference grammar
  repl    - Interactive parse loop
  demo    - Narrated lexer and parser walkthrough`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $OXIDE_CONFIG or ./oxide.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if noColor || !cfg.ColorEnabled() {
		color.NoColor = true
	}

	verbosity := cfg.Log.Verbosity
	if verbose {
		verbosity = max(verbosity, 2)
	}
	commonlog.Configure(verbosity, cfg.LogFile())

	return nil
}

// readSource returns the inline source when given, else the named file, or
// stdin for "-".
func readSource(cmd *cobra.Command, args []string, inline string) (name, source string, err error) {
	if inline != "" {
		return "<inline>", inline, nil
	}
	if len(args) == 0 {
		return "", "", fmt.Errorf("no input: pass a file or --eval")
	}

	path := args[0]
	if path == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return "<stdin>", string(content), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	return path, string(content), nil
}
