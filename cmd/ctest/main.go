package main

import (
	"os"

	"ctest/internal/cli/commands"
)

var version = "dev"

func main() {
	os.Exit(commands.Execute(suite, version, os.Args[1:], os.Stdout, os.Stderr))
}
