package main

import (
	"fmt"
	"os"

	"example.com/denine-prints/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
