package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/imgreorder/cmd/imgreorder"
)

func main() {
	rootCmd := imgreorder.NewRootCmd()

	if err := imgreorder.GenManPage(rootCmd, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
