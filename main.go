package main

import (
	"os"

	"loan-strategy/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
