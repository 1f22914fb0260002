// Command pipeloop solves pipe mazes from the command line.
//
//	pipeloop solve [file]   print the furthest loop distance and enclosed area
//	pipeloop view [file]    browse the solved maze in the terminal
//
// The file defaults to input.txt.
package main

import (
	"fmt"
	"os"
)

func main() {
	err := rootCmd.Execute()
	teardown()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
