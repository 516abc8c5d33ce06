package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/pinboard/cmd"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		// status errors were already reported by the command's formatter
		var statusErr *cli.StatusError
		if !errors.As(err, &statusErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	os.Exit(cli.ExitCode(err))
}
