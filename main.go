package main

import (
	"os"

	"github.com/nandinis/edudeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
