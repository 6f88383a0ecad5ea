package main

import (
	"os"

	"github.com/joho/godotenv"

	"trivia-cli/internal/cli"
)

func main() {
	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
