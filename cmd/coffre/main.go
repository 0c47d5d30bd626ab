package main

import (
	"os"

	"github.com/coffre-dev/coffre/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
