package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
	"github.com/invops/invctl/internal/cli/output"
	"github.com/invops/invctl/internal/cli/session"
	"github.com/invops/invctl/internal/cli/timeutil"
	"github.com/invops/invctl/internal/dashboard"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Long: `Show the identity and server of the stored session.

Reads the local session only; the server is not contacted. The expiry shown
is taken from the token without verifying its signature.`,
	RunE: runWhoami,
}

type whoamiInfo struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Role     string `json:"role" yaml:"role"`
	Server   string `json:"server" yaml:"server"`
	Expiry   string `json:"token_expiry" yaml:"token_expiry"`
	Sections string `json:"sections" yaml:"sections"`
}

func runWhoami(cmd *cobra.Command, args []string) error {
	store, err := session.NewStore()
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}

	sess, ok := store.Get()
	if !ok {
		return session.ErrNotLoggedIn
	}

	info := whoamiInfo{
		ID:       sess.User.ID,
		Name:     sess.User.Name,
		Email:    sess.User.Email,
		Role:     sess.User.Role.String(),
		Server:   store.ServerURL(),
		Expiry:   timeutil.FormatExpiry(cmdutil.TokenExpiry(sess.Token), time.Now()),
		Sections: strings.Join(dashboard.Sections(sess.User.Role), ", "),
	}

	format, err := cmdutil.GetOutputFormat()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, info)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, info)
	default:
		return output.KeyValueTable(os.Stdout, [][2]string{
			{"ID", info.ID},
			{"Name", info.Name},
			{"Email", info.Email},
			{"Role", info.Role},
			{"Server", info.Server},
			{"Token expiry", info.Expiry},
			{"Sections", info.Sections},
		})
	}
}
