package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"oxide/internal/errors"
)

var explainCmd = &cobra.Command{
	Use:   "explain [code]",
	Short: "Describe a diagnostic code",
	Long: `Prints the category and description of a diagnostic code such as E0105.
Without an argument every known code is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, code := range errors.Codes {
			fmt.Fprintln(out, explainLine(code))
		}
		return nil
	}

	code := strings.ToUpper(args[0])
	if !slices.Contains(errors.Codes, code) {
		return fmt.Errorf("unknown error code %s", code)
	}
	fmt.Fprintln(out, explainLine(code))
	return nil
}

func explainLine(code string) string {
	return fmt.Sprintf("%s (%s): %s", code, errors.GetErrorCategory(code), errors.GetErrorDescription(code))
}
