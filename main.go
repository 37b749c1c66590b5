package main

import (
	"fmt"
	"os"

	"github.com/Error-42/othello-arena/cmd"
)

// main - is the entry point of the application. The CLI layer loads the
// configuration, builds the logger and status sink, and runs the arena.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
