// Package cmdutil provides shared utilities for invctl commands, including
// the session guard consulted before every protected command.
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/invops/invctl/internal/cli/logging"
	"github.com/invops/invctl/internal/cli/output"
	"github.com/invops/invctl/internal/cli/prompt"
	"github.com/invops/invctl/internal/cli/session"
	"github.com/invops/invctl/pkg/apiclient"
)

// Flags stores global flag values accessible by subcommands.
var Flags = &GlobalFlags{}

// GlobalFlags holds the global flag values.
type GlobalFlags struct {
	ServerURL string
	Token     string
	Output    string
	NoColor   bool
	Verbose   bool
}

// Logger builds the CLI logger from the global flags.
func Logger() zerolog.Logger {
	return logging.New(logging.Options{
		Verbose: Flags.Verbose,
		NoColor: Flags.NoColor,
	})
}

// APIBase derives the API base URL from a server URL. The service mounts
// its REST surface under /api.
func APIBase(serverURL string) string {
	trimmed := strings.TrimRight(serverURL, "/")
	if strings.HasSuffix(trimmed, "/api") {
		return trimmed
	}
	return trimmed + "/api"
}

// Guard gates every protected command. It consults the session store before
// any command logic runs: with no valid session the command never starts and
// the user is pointed at the login entry point. On success it returns the
// authenticated client and the stored identity.
//
// The --server/--token overrides bypass the store entirely; identity is nil
// in that case and callers needing a role fetch the profile themselves.
func Guard() (*apiclient.Client, *session.Identity, error) {
	logger := Logger()

	if Flags.ServerURL != "" && Flags.Token != "" {
		client := apiclient.New(APIBase(Flags.ServerURL)).
			WithLogger(logger).
			WithToken(Flags.Token)
		return client, nil, nil
	}

	store, err := session.NewStore()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	sess, ok := store.Get()
	if !ok {
		return nil, nil, session.ErrNotLoggedIn
	}

	serverURL := store.ServerURL()
	if Flags.ServerURL != "" {
		serverURL = Flags.ServerURL
	}
	if serverURL == "" {
		return nil, nil, fmt.Errorf("no server URL configured - run 'invctl login --server <url>' first")
	}

	client := apiclient.New(APIBase(serverURL)).
		WithLogger(logger).
		WithCredentials(store).
		OnSessionEnd(func() {
			logger.Debug().Msg("session ended by server rejection")
		})
	if Flags.Token != "" {
		client = client.WithToken(Flags.Token)
	}

	user := sess.User
	return client, &user, nil
}

// TokenExpiry extracts the expiry claim from a bearer token without
// verifying it. Display only: the server remains the authority on token
// validity. Returns zero time when the token is not a JWT or has no expiry.
func TokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// GetOutputFormat returns the parsed output format.
func GetOutputFormat() (output.Format, error) {
	return output.ParseFormat(Flags.Output)
}

// Printer returns a status printer honoring --no-color, writing to stderr so
// structured output on stdout stays clean.
func Printer() *output.Printer {
	return output.NewPrinter(os.Stderr, !Flags.NoColor)
}

// PrintOutput prints data in the selected format. For table format it
// displays emptyMsg when the collection is empty, otherwise renders the
// table.
func PrintOutput(w io.Writer, data any, isEmpty bool, emptyMsg string, table output.TableRenderer) error {
	format, err := GetOutputFormat()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	default:
		if isEmpty {
			_, _ = fmt.Fprintln(w, emptyMsg)
			return nil
		}
		return output.PrintTable(w, table)
	}
}

// PrintResourceWithSuccess prints a mutated resource in the selected format.
// Table format shows a success message instead of re-rendering the entity.
func PrintResourceWithSuccess(w io.Writer, data any, successMsg string) error {
	format, err := GetOutputFormat()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	default:
		Printer().Success(successMsg)
		return nil
	}
}

// RunDeleteWithConfirmation prompts for confirmation (unless force is set)
// and runs deleteFn. The confirmation is a UX policy of the command layer;
// the controller itself deletes unconditionally.
func RunDeleteWithConfirmation(resourceType, name string, force bool, deleteFn func() error) error {
	confirmed, err := prompt.ConfirmWithForce(fmt.Sprintf("Delete %s '%s'?", resourceType, name), force)
	if err != nil {
		return HandleAbort(err)
	}
	if !confirmed {
		fmt.Println("Aborted.")
		return nil
	}

	if err := deleteFn(); err != nil {
		return err
	}

	Printer().Success(fmt.Sprintf("%s '%s' deleted successfully", resourceType, name))
	return nil
}

// HandleAbort converts a prompt abort (Ctrl+C) into a clean exit.
func HandleAbort(err error) error {
	if prompt.IsAborted(err) {
		fmt.Println("\nAborted.")
		return nil
	}
	return err
}

// EmptyOr returns the value if not empty, otherwise the fallback. Used for
// table cells where empty fields show "-".
func EmptyOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// StringFlagIfChanged returns a pointer to the flag value when the user set
// it, nil otherwise. Update requests use it to build partial bodies.
func StringFlagIfChanged(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// Float64FlagIfChanged mirrors StringFlagIfChanged for float flags.
func Float64FlagIfChanged(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

// IntFlagIfChanged mirrors StringFlagIfChanged for int flags.
func IntFlagIfChanged(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}
