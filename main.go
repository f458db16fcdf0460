package main

import (
	"os"

	"github.com/hiresmart-ai/hiresmart/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
