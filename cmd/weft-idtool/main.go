package main

import (
	"os"

	"weft/cmd/weft-idtool/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
