package main

import (
	"os"

	"github.com/tbmobb813/ciwatch/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(int(cli.ExitCodeOf(err)))
	}
}
