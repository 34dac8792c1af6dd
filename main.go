package main

import (
	"os"

	"reddit-hotspots/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
