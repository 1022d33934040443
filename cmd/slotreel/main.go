// Command slotreel validates machine configs, runs headless spins and
// replays reel scenarios.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/slotreel/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
