// Package product implements product management commands for invctl.
package product

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for product management.
var Cmd = &cobra.Command{
	Use:   "product",
	Short: "Product management",
	Long: `Manage products on the inventory server.

Product commands allow you to list, create, update, and delete products.
Write operations require the product_manager role or above; the server is
the authority on permissions.

Examples:
  # List all products
  invctl product list

  # Create a product
  invctl product create --name "Laptop" --sku LP-100 --price 999.90 --stock 12

  # Change only the price
  invctl product update 6614f0... --price 899.00

  # Delete a product
  invctl product delete 6614f0...`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
}
