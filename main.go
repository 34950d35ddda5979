package main

import (
	"os"

	"github.com/agrovista/agriquery/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
