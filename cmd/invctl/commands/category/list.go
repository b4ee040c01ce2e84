package category

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
	"github.com/invops/invctl/pkg/apiclient"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	Long: `List all product categories on the inventory server.

Examples:
  # List categories as table
  invctl category list

  # List as JSON
  invctl category list -o json`,
	RunE: runList,
}

// CategoryList is a list of categories for table rendering.
type CategoryList []apiclient.Category

// Headers implements TableRenderer.
func (cl CategoryList) Headers() []string {
	return []string{"ID", "NAME", "DESCRIPTION"}
}

// Rows implements TableRenderer.
func (cl CategoryList) Rows() [][]string {
	rows := make([][]string, 0, len(cl))
	for _, c := range cl {
		rows = append(rows, []string{c.ID, c.Name, cmdutil.EmptyOr(c.Description, "-")})
	}
	return rows
}

func runList(cmd *cobra.Command, args []string) error {
	client, _, err := cmdutil.Guard()
	if err != nil {
		return err
	}

	categories, err := client.ListCategories()
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	return cmdutil.PrintOutput(os.Stdout, categories, len(categories) == 0, "No categories found.", CategoryList(categories))
}
