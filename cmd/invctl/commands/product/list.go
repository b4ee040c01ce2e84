package product

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
	"github.com/invops/invctl/pkg/apiclient"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	Long: `List all products on the inventory server.

Examples:
  # List products as table
  invctl product list

  # List as JSON
  invctl product list -o json`,
	RunE: runList,
}

// ProductList is a list of products for table rendering.
type ProductList []apiclient.Product

// Headers implements TableRenderer.
func (pl ProductList) Headers() []string {
	return []string{"ID", "NAME", "SKU", "PRICE", "STOCK", "CATEGORY"}
}

// Rows implements TableRenderer.
func (pl ProductList) Rows() [][]string {
	rows := make([][]string, 0, len(pl))
	for _, p := range pl {
		category := p.Category.Name
		if category == "" {
			category = p.Category.ID
		}
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.SKU,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			strconv.Itoa(p.Stock),
			cmdutil.EmptyOr(category, "-"),
		})
	}
	return rows
}

func runList(cmd *cobra.Command, args []string) error {
	client, _, err := cmdutil.Guard()
	if err != nil {
		return err
	}

	products, err := client.ListProducts()
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	return cmdutil.PrintOutput(os.Stdout, products, len(products) == 0, "No products found.", ProductList(products))
}
