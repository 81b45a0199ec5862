package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/kanban/cmd"
	"github.com/thenoetrevino/kanban/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	// Commands report their own failures; anything else is printed here
	var exitErr *cli.ExitCodeError
	if !errors.As(err, &exitErr) || exitErr.Code == cli.ExitUsage {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCodeFor(err))
}
