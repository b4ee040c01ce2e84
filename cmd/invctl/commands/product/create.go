package product

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
	"github.com/invops/invctl/internal/cli/prompt"
	"github.com/invops/invctl/pkg/apiclient"
)

var (
	createName        string
	createDescription string
	createSKU         string
	createPrice       float64
	createStock       int
	createCategory    string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new product",
	Long: `Create a new product on the inventory server.

The server assigns the product id. Missing required fields are prompted for
interactively.

Examples:
  # Create a product with flags
  invctl product create --name "Laptop" --sku LP-100 --price 999.90 --stock 12

  # Create with a category reference
  invctl product create --name "Laptop" --sku LP-100 --price 999.90 --category 6614e8...

  # Create interactively
  invctl product create`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Product name (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Product description")
	createCmd.Flags().StringVar(&createSKU, "sku", "", "Stock keeping unit (required)")
	createCmd.Flags().Float64Var(&createPrice, "price", 0, "Unit price")
	createCmd.Flags().IntVar(&createStock, "stock", 0, "Stock count")
	createCmd.Flags().StringVar(&createCategory, "category", "", "Category id")
}

func runCreate(cmd *cobra.Command, args []string) error {
	client, _, err := cmdutil.Guard()
	if err != nil {
		return err
	}

	name := createName
	if name == "" {
		name, err = prompt.InputRequired("Product name")
		if err != nil {
			return cmdutil.HandleAbort(err)
		}
	}

	sku := createSKU
	if sku == "" {
		sku, err = prompt.InputRequired("SKU")
		if err != nil {
			return cmdutil.HandleAbort(err)
		}
	}

	price := createPrice
	if !cmd.Flags().Changed("price") && createName == "" {
		input, err := prompt.InputWithValidation("Price", func(s string) error {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				return fmt.Errorf("enter a number")
			}
			return nil
		})
		if err != nil {
			return cmdutil.HandleAbort(err)
		}
		price, _ = strconv.ParseFloat(input, 64)
	}

	req := &apiclient.CreateProductRequest{
		Name:        name,
		Description: createDescription,
		SKU:         sku,
		Price:       price,
		Stock:       createStock,
		Category:    createCategory,
	}

	product, err := client.CreateProduct(req)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, product, fmt.Sprintf("Product '%s' created successfully", product.Name))
}
