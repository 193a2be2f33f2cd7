package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gowalk/tlox/internal/driver"
)

func runFile(args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	code := driver.Run(string(source), os.Stdout, os.Stderr)
	os.Exit(code)
	return nil
}

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Execute FILE",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(args)
	},
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate FILE",
	Short: "Execute FILE (alias of run)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(evaluateCmd)
}
