package product

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
	"github.com/invops/invctl/pkg/apiclient"
)

var updateCmd = &cobra.Command{
	Use:   "update <product-id>",
	Short: "Update a product",
	Long: `Update an existing product on the inventory server.

Only the flags you set are sent; unset fields keep their current values.

Examples:
  # Change only the price
  invctl product update 6614f0... --price 899.00

  # Restock and rename
  invctl product update 6614f0... --stock 40 --name "Laptop Pro"

  # Move to another category
  invctl product update 6614f0... --category 6614e8...`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().String("name", "", "Product name")
	updateCmd.Flags().String("description", "", "Product description")
	updateCmd.Flags().String("sku", "", "Stock keeping unit")
	updateCmd.Flags().Float64("price", 0, "Unit price")
	updateCmd.Flags().Int("stock", 0, "Stock count")
	updateCmd.Flags().String("category", "", "Category id")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	client, _, err := cmdutil.Guard()
	if err != nil {
		return err
	}

	req := &apiclient.UpdateProductRequest{
		Name:        cmdutil.StringFlagIfChanged(cmd, "name"),
		Description: cmdutil.StringFlagIfChanged(cmd, "description"),
		SKU:         cmdutil.StringFlagIfChanged(cmd, "sku"),
		Price:       cmdutil.Float64FlagIfChanged(cmd, "price"),
		Stock:       cmdutil.IntFlagIfChanged(cmd, "stock"),
		Category:    cmdutil.StringFlagIfChanged(cmd, "category"),
	}

	if req.Name == nil && req.Description == nil && req.SKU == nil &&
		req.Price == nil && req.Stock == nil && req.Category == nil {
		return fmt.Errorf("nothing to update: set at least one flag")
	}

	product, err := client.UpdateProduct(args[0], req)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, product, fmt.Sprintf("Product '%s' updated successfully", product.Name))
}
