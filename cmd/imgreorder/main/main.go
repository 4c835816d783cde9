package main

import (
	"os"

	"github.com/arthur-debert/imgreorder/cmd/imgreorder"
)

func main() {
	os.Exit(imgreorder.Execute())
}
