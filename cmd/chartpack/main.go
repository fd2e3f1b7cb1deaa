package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/chartpack/cmd/chartpack/commands"
)

const (
	cmdName = "chartpack"

	shortDesc = "Helm chart automation for build pipelines."
	longDesc  = `Helm chart automation for build pipelines.

Chartpack packages, lints, and builds dependencies for the Helm charts in a
repository by driving the helm executable, and publishes a placeholder
artifact so the host build graph can track charts without storing chart
archives.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
