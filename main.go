package main

import (
	"os"

	"github.com/carson-networks/simple-bank/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
