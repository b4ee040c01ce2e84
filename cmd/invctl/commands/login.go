package commands

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
	"github.com/invops/invctl/internal/cli/prompt"
	"github.com/invops/invctl/internal/cli/session"
	"github.com/invops/invctl/pkg/apiclient"
	"github.com/invops/invctl/pkg/roles"
)

var (
	loginServer   string
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the inventory server",
	Long: `Authenticate with the inventory server and store the session.

On first login you must specify the server URL. Subsequent logins reuse
the stored server URL unless overridden.

Examples:
  # First login to a server
  invctl login --server http://localhost:5000 --email admin@example.com

  # Login with password on the command line (less secure)
  invctl login --server http://localhost:5000 -e admin@example.com -p secret

  # Re-login to the stored server
  invctl login`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginServer, "server", "", "Server URL (required on first login)")
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Email address")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	store, err := session.NewStore()
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Determine server URL: flag, then stored configuration.
	serverURL := loginServer
	if serverURL == "" {
		serverURL = cmdutil.Flags.ServerURL
	}
	if serverURL == "" {
		serverURL = store.ServerURL()
	}
	if serverURL == "" {
		return fmt.Errorf("no server URL specified and none stored\n\n" +
			"Specify the server URL:\n" +
			"  invctl login --server http://localhost:5000")
	}

	parsed, err := url.Parse(serverURL)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}
	if parsed.Scheme == "" {
		parsed.Scheme = "http"
		serverURL = parsed.String()
	}

	validate := validator.New()

	email := loginEmail
	if email == "" {
		email, err = prompt.InputWithValidation("Email", func(input string) error {
			if validate.Var(input, "required,email") != nil {
				return fmt.Errorf("enter a valid email address")
			}
			return nil
		})
		if err != nil {
			return cmdutil.HandleAbort(err)
		}
	} else if validate.Var(email, "required,email") != nil {
		return fmt.Errorf("invalid email address: %q", email)
	}

	password := loginPassword
	if password == "" {
		password, err = prompt.Password("Password")
		if err != nil {
			return cmdutil.HandleAbort(err)
		}
	}

	client := apiclient.New(cmdutil.APIBase(serverURL)).WithLogger(cmdutil.Logger())

	fmt.Printf("Logging in to %s as %s...\n", serverURL, email)
	resp, err := client.Login(email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	role, err := roles.Parse(resp.User.Role)
	if err != nil {
		return fmt.Errorf("server returned an unusable identity: %w", err)
	}

	identity := session.Identity{
		ID:    resp.User.ID,
		Name:  resp.User.Name,
		Email: resp.User.Email,
		Role:  role,
	}

	if err := store.SetServerURL(serverURL); err != nil {
		return fmt.Errorf("failed to save server URL: %w", err)
	}
	if err := store.Set(resp.Token, identity); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	cmdutil.Printer().Success(fmt.Sprintf("Logged in as %s (%s)", identity.Name, identity.Role))
	fmt.Printf("Session saved to: %s\n", store.ConfigPath())
	return nil
}
