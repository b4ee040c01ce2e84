package category

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <category-id>",
	Short: "Delete a category",
	Long: `Delete a product category from the inventory server.

Products referencing the category keep their reference; the server decides
what a dangling reference means.

Examples:
  # Delete with confirmation
  invctl category delete 6614e8...

  # Delete without confirmation
  invctl category delete 6614e8... --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	client, _, err := cmdutil.Guard()
	if err != nil {
		return err
	}

	id := args[0]
	return cmdutil.RunDeleteWithConfirmation("category", id, deleteForce, func() error {
		if err := client.DeleteCategory(id); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
}
