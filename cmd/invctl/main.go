package main

import (
	"fmt"
	"os"

	"github.com/invops/invctl/cmd/invctl/commands"
	"github.com/invops/invctl/pkg/apiclient"
)

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Set version info for commands package
	commands.Version = version
	commands.Commit = commit
	commands.Date = date

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if apiclient.IsUnauthenticated(err) {
			fmt.Fprintln(os.Stderr, "Your session has ended. Run 'invctl login' to sign in again.")
		}
		os.Exit(1)
	}
}
