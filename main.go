package main

import (
	"os"

	"github.com/abhisek/fuzzwater/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
