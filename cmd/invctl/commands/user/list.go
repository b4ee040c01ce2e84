package user

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
	"github.com/invops/invctl/pkg/apiclient"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	Long: `List all user accounts on the inventory server.

Requires the admin role server-side.

Examples:
  # List users as table
  invctl user list

  # List as JSON
  invctl user list -o json`,
	RunE: runList,
}

// UserList is a list of users for table rendering.
type UserList []apiclient.UserRecord

// Headers implements TableRenderer.
func (ul UserList) Headers() []string {
	return []string{"ID", "NAME", "EMAIL", "ROLE"}
}

// Rows implements TableRenderer.
func (ul UserList) Rows() [][]string {
	rows := make([][]string, 0, len(ul))
	for _, u := range ul {
		rows = append(rows, []string{u.ID, u.Name, u.Email, u.Role})
	}
	return rows
}

func runList(cmd *cobra.Command, args []string) error {
	client, _, err := cmdutil.Guard()
	if err != nil {
		return err
	}

	users, err := client.ListUsers()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	return cmdutil.PrintOutput(os.Stdout, users, len(users) == 0, "No users found.", UserList(users))
}
