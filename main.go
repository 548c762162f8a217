package main

import (
	"os"

	"github.com/nbhznb/learnify/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
