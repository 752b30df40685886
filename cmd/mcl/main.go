package main

import (
	"os"

	"mcl/internal/mcl"
)

func main() {
	os.Exit(mcl.Run(os.Args[1:]))
}
