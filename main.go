package main

import (
	"os"

	"github.com/jobtrackr/jobtrackr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
