package user

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/invops/invctl/cmd/invctl/cmdutil"
	"github.com/invops/invctl/internal/cli/prompt"
	"github.com/invops/invctl/pkg/apiclient"
	"github.com/invops/invctl/pkg/roles"
)

var (
	registerName     string
	registerEmail    string
	registerPassword string
	registerRole     string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user",
	Long: `Register a new user account on the inventory server.

The password is prompted for when not given on the command line. Requires
the admin role server-side.

Examples:
  # Register a viewer (default role)
  invctl user register --name "Alice" --email alice@example.com

  # Register a product manager
  invctl user register --name "Bob" --email bob@example.com --role product_manager

  # Register interactively
  invctl user register`,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name (required)")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address (required)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerRole, "role", "", "Role (admin|product_manager|viewer)")
}

func runRegister(cmd *cobra.Command, args []string) error {
	client, _, err := cmdutil.Guard()
	if err != nil {
		return err
	}

	validate := validator.New()

	name := registerName
	if name == "" {
		name, err = prompt.InputRequired("Name")
		if err != nil {
			return cmdutil.HandleAbort(err)
		}
	}

	email := registerEmail
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

	role := registerRole
	if role != "" {
		if _, err := roles.Parse(role); err != nil {
			return err
		}
	} else if !cmd.Flags().Changed("role") && registerName == "" {
		// Interactive mode - ask for the role.
		role, err = prompt.Select("Role", []prompt.SelectOption{
			{Label: "viewer", Value: string(roles.Viewer), Description: "read-only access"},
			{Label: "product_manager", Value: string(roles.ProductManager), Description: "manage products and categories"},
			{Label: "admin", Value: string(roles.Admin), Description: "full access including users"},
		})
		if err != nil {
			return cmdutil.HandleAbort(err)
		}
	}

	password := registerPassword
	if password == "" {
		password, err = prompt.PasswordWithConfirmation("Password", "Confirm password", 6)
		if err != nil {
			return cmdutil.HandleAbort(err)
		}
	}

	req := &apiclient.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}

	created, err := client.Register(req)
	if err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, created, fmt.Sprintf("User '%s' registered successfully", created.Email))
}
