// quanta is a calculator surface over the SI dimension algebra.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/quanta/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
