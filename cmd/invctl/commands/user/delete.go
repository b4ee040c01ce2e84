package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete a user",
	Long: `Delete a user account from the inventory server.

Requires the admin role server-side. Deleting your own account ends the
session on the next request.

Examples:
  # Delete with confirmation
  invctl user delete 6614d2...

  # Delete without confirmation
  invctl user delete 6614d2... --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	client, identity, err := cmdutil.Guard()
	if err != nil {
		return err
	}

	id := args[0]
	if identity != nil && identity.ID == id && !deleteForce {
		return fmt.Errorf("refusing to delete the logged-in account without --force")
	}

	return cmdutil.RunDeleteWithConfirmation("user", id, deleteForce, func() error {
		if err := client.DeleteUser(id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}
