package main

import (
	"os"

	"github.com/global-mysterysnailrevolution/Borg/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
