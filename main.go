package main

import (
	"os"

	"github.com/adityak/codedrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
