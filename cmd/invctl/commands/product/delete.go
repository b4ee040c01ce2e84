package product

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <product-id>",
	Short: "Delete a product",
	Long: `Delete a product from the inventory server.

Examples:
  # Delete with confirmation
  invctl product delete 6614f0...

  # Delete without confirmation
  invctl product delete 6614f0... --force`,
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
	return cmdutil.RunDeleteWithConfirmation("product", id, deleteForce, func() error {
		if err := client.DeleteProduct(id); err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
}
