package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gowalk/tlox/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse FILE and print its statement list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		code := driver.Parse(string(source), os.Stdout, os.Stderr)
		os.Exit(code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
