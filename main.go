package main

import (
	"os"

	"github.com/cidr-tools/cidrgrep/cmd"
	"github.com/cidr-tools/cidrgrep/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
