// Command tlox is the CLI entry point: tokenize, parse, run, or evaluate
// a source file.
package main

import (
	"fmt"
	"os"

	"github.com/gowalk/tlox/cmd/tlox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
