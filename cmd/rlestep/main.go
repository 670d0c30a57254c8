package main

import (
	"os"

	"github.com/arloliu/rlestep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
