package main

import (
	"os"

	"github.com/meowyx/gaia-toolkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
