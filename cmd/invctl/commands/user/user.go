// Package user implements user management commands for invctl.
package user

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for user management.
var Cmd = &cobra.Command{
	Use:   "user",
	Short: "User management",
	Long: `Manage user accounts on the inventory server.

User commands allow you to list, register, update, and delete users.
These operations require the admin role server-side; invctl does not
second-guess that and lets the server answer with Forbidden.

Examples:
  # List all users
  invctl user list

  # Register a new user
  invctl user register --name "Alice" --email alice@example.com --role product_manager

  # Change a user's role
  invctl user update 6614d2... --role admin

  # Delete a user
  invctl user delete 6614d2...`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(registerCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
}
