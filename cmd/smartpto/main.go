package main

import (
	"os"

	"smart-pto/cmd/smartpto/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
