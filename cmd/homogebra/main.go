package main

import (
	"os"

	"homogebra/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
