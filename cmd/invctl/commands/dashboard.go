package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
	"github.com/invops/invctl/internal/cli/output"
	"github.com/invops/invctl/internal/dashboard"
	"github.com/invops/invctl/pkg/roles"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show aggregate inventory statistics",
	Long: `Show aggregate inventory statistics for the current session.

Counts are fetched concurrently. The user count is requested only for admin
sessions; other roles see it as 0 without any request being made. A
permission failure on a single statistic degrades it to 0 with a warning
instead of failing the whole view.`,
	RunE: runDashboard,
}

type dashboardView struct {
	Role     string   `json:"role" yaml:"role"`
	Sections []string `json:"sections" yaml:"sections"`
	dashboard.Stats  `yaml:",inline"`
}

func runDashboard(cmd *cobra.Command, args []string) error {
	client, identity, err := cmdutil.Guard()
	if err != nil {
		return err
	}

	var role roles.Role
	if identity != nil {
		role = identity.Role
	} else {
		// Token supplied by flag: the server tells us who we are.
		profile, err := client.Profile()
		if err != nil {
			return fmt.Errorf("failed to resolve identity: %w", err)
		}
		role, err = roles.Parse(profile.Role)
		if err != nil {
			return fmt.Errorf("server returned an unusable identity: %w", err)
		}
	}

	stats, err := dashboard.Collect(client, role)
	if err != nil {
		return err
	}

	view := dashboardView{
		Role:     role.String(),
		Sections: dashboard.Sections(role),
		Stats:    *stats,
	}

	format, err := cmdutil.GetOutputFormat()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, view)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, view)
	default:
		pairs := [][2]string{
			{"Role", view.Role},
			{"Products", strconv.Itoa(view.Products)},
			{"Categories", strconv.Itoa(view.Categories)},
		}
		if roles.Allowed(roles.Admin, role) {
			pairs = append(pairs, [2]string{"Users", strconv.Itoa(view.Users)})
		}
		pairs = append(pairs, [2]string{"Sections", strings.Join(view.Sections, ", ")})
		if err := output.KeyValueTable(os.Stdout, pairs); err != nil {
			return err
		}
		for _, w := range view.Warnings {
			cmdutil.Printer().Warning(w)
		}
		return nil
	}
}
