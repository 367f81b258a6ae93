// Package main provides the entry point for the streakcard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vukan322/streakcard/cmd/streakcard/commands"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	err := commands.NewRootCommand(version).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
