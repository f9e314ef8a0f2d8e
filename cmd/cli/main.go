// Package main implements the clickup-task CLI.
package main

import (
	"errors"
	"os"
)

func main() {
	if err := newRootCmd(newUseCaseFromConfig).Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
