package category

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
	"github.com/invops/invctl/internal/cli/prompt"
	"github.com/invops/invctl/pkg/apiclient"
)

var (
	createName        string
	createDescription string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new category",
	Long: `Create a new product category on the inventory server.

The server assigns the category id.

Examples:
  # Create a category
  invctl category create --name "Electronics"

  # Create with a description
  invctl category create --name "Electronics" --description "Phones, laptops, accessories"

  # Create interactively
  invctl category create`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Category name (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Category description")
}

func runCreate(cmd *cobra.Command, args []string) error {
	client, _, err := cmdutil.Guard()
	if err != nil {
		return err
	}

	name := createName
	if name == "" {
		name, err = prompt.InputRequired("Category name")
		if err != nil {
			return cmdutil.HandleAbort(err)
		}
	}

	req := &apiclient.CreateCategoryRequest{
		Name:        name,
		Description: createDescription,
	}

	category, err := client.CreateCategory(req)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, category, fmt.Sprintf("Category '%s' created successfully", category.Name))
}
