package category

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
	"github.com/invops/invctl/pkg/apiclient"
)

var updateCmd = &cobra.Command{
	Use:   "update <category-id>",
	Short: "Update a category",
	Long: `Update an existing product category on the inventory server.

Only the flags you set are sent; unset fields keep their current values.

Examples:
  # Rename a category
  invctl category update 6614e8... --name "Consumer Electronics"

  # Change only the description
  invctl category update 6614e8... --description "Everything with a plug"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().String("name", "", "Category name")
	updateCmd.Flags().String("description", "", "Category description")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	client, _, err := cmdutil.Guard()
	if err != nil {
		return err
	}

	req := &apiclient.UpdateCategoryRequest{
		Name:        cmdutil.StringFlagIfChanged(cmd, "name"),
		Description: cmdutil.StringFlagIfChanged(cmd, "description"),
	}

	if req.Name == nil && req.Description == nil {
		return fmt.Errorf("nothing to update: set at least one flag")
	}

	category, err := client.UpdateCategory(args[0], req)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, category, fmt.Sprintf("Category '%s' updated successfully", category.Name))
}
