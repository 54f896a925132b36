package main

import (
	"os"

	"hme/cmd/hme/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
