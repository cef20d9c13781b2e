package main

import (
	"os"

	"github.com/m-mizutani/piilog/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
