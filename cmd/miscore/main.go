// miscore - personal gaming record ledger
// Source: https://github.com/miscore-dev/miscore

package main

import (
	"os"

	"github.com/miscore-dev/miscore/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
