package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mfajardo/transmalla/cmd"
)

func main() {
	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
