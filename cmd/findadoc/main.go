// Package main is the entry point for the findadoc CLI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "findadoc:", err)
		os.Exit(1)
	}
}
