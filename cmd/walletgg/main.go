package main

import (
	"os"

	"walletgg/cmd/walletgg/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
