package main

import (
	"os"

	"knlang-arcade/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
