package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
	"github.com/invops/invctl/internal/cli/session"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	Long: `Discard the stored session.

The session token is removed from the local configuration file. The stored
server URL is kept, so the next login does not need --server again. Logging
out when no session exists is not an error.`,
	RunE: runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	store, err := session.NewStore()
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}

	sess, ok := store.Get()
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}

	store.Clear()
	cmdutil.Printer().Success(fmt.Sprintf("Logged out %s", sess.User.Email))
	return nil
}
