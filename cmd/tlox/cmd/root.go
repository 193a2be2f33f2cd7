package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tlox",
	Short: "A tree-walking interpreter for a small scripting language",
	Long: `tlox scans, parses, and evaluates programs written in a small
dynamically-typed imperative language: variables, lexical scoping,
arithmetic and logical operators, control flow, first-class functions
with closures, and recursion.`,
	Version: Version,
}

// Execute runs the root command. The exit code it reports through
// os.Exit is set by the subcommands themselves (0/65/70), not by cobra's
// default error handling, since tokenize/parse/run need codes other than
// 0 or 1 on failure.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}
