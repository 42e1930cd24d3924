package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	// Panic Recovery: report to stderr, stdout belongs to the animation
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPIPES CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	Execute()
}
