package main

import (
	"os"

	"github.com/rainstash/rainstash/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
