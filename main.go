package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/tally/cmd"
	"github.com/thenoetrevino/tally/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	// commands report their own failures; anything else is printed here
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || errors.Is(err, cli.ErrUsage) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCodeFor(err))
}
