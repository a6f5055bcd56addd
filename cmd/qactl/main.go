package main

import (
	"fmt"
	"os"

	"github.com/Eppo-exp/Eppo-AI-SDK-demo/cmd/qactl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
