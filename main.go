package main

import (
	"os"

	"github.com/hey-rash/PlacementNex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
