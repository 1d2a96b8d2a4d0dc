package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewWhoamiCommand creates the whoami command, which checks the stored
// access token against the API.
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient(cmd.Context())
			if err != nil {
				return err
			}

			person, err := client.Test().Login(cmd.Context())
			if err != nil {
				return err
			}

			if !tableRequested() {
				return outputObject(person)
			}

			_, _ = fmt.Fprintf(os.Stdout, "%s (ID: %s)\n", person.Username, person.ID)

			return nil
		},
	}
}
