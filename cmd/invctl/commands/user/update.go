package user

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
	"github.com/invops/invctl/pkg/apiclient"
	"github.com/invops/invctl/pkg/roles"
)

var updateCmd = &cobra.Command{
	Use:   "update <user-id>",
	Short: "Update a user",
	Long: `Update an existing user account on the inventory server.

Only the flags you set are sent; unset fields keep their current values.
Requires the admin role server-side.

Examples:
  # Promote a user
  invctl user update 6614d2... --role admin

  # Fix an email address
  invctl user update 6614d2... --email alice@example.org`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().String("name", "", "Display name")
	updateCmd.Flags().String("email", "", "Email address")
	updateCmd.Flags().String("role", "", "Role (admin|product_manager|viewer)")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	client, _, err := cmdutil.Guard()
	if err != nil {
		return err
	}

	req := &apiclient.UpdateUserRequest{
		Name:  cmdutil.StringFlagIfChanged(cmd, "name"),
		Email: cmdutil.StringFlagIfChanged(cmd, "email"),
		Role:  cmdutil.StringFlagIfChanged(cmd, "role"),
	}

	if req.Name == nil && req.Email == nil && req.Role == nil {
		return fmt.Errorf("nothing to update: set at least one flag")
	}

	if req.Role != nil {
		if _, err := roles.Parse(*req.Role); err != nil {
			return err
		}
	}

	updated, err := client.UpdateUser(args[0], req)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, updated, fmt.Sprintf("User '%s' updated successfully", updated.Email))
}
