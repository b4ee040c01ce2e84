// Package category implements category management commands for invctl.
package category

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for category management.
var Cmd = &cobra.Command{
	Use:   "category",
	Short: "Category management",
	Long: `Manage product categories on the inventory server.

Category commands allow you to list, create, update, and delete categories.
Write operations require the product_manager role or above; the server is
the authority on permissions.

Examples:
  # List all categories
  invctl category list

  # Create a category
  invctl category create --name "Electronics"

  # Rename a category
  invctl category update 6614e8... --name "Consumer Electronics"

  # Delete a category
  invctl category delete 6614e8...`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
}
