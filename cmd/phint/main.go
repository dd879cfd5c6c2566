package main

import (
	"os"

	"github.com/arthur-debert/phint/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
