package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/reelworks/go-vimeo/internal/constants"
)

// NewLoginCommand creates the login command: the interactive three-legged
// OAuth handshake.
func NewLoginCommand() *cobra.Command {
	var permission string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authorize the CLI against a Vimeo account",
		Long: `Walks the three-legged OAuth handshake: obtains a request token, prints
the authorization URL to visit, and exchanges the granted verifier for an
access token. The token is persisted to the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd.Context(), permission)
		},
	}

	cmd.Flags().StringVar(&permission, "permission", constants.DefaultPermission, "access level to request (read, write, delete)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""
			config.TokenSecret = ""

			err := saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = os.Stdout.WriteString("Logged out\n")

			return nil
		},
	}
}

func runLogin(ctx context.Context, permission string) error {
	config := loadConfig()

	err := ensureConsumerCredentials(config)
	if err != nil {
		return err
	}

	client, err := createClient(ctx)
	if err != nil {
		return err
	}

	err = client.GetRequestToken(ctx)
	if err != nil {
		return err
	}

	authURL, err := client.AuthorizationURL(permission)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Visit the following URL and grant access:\n\n  %s\n\n", authURL)

	verifier, err := promptLine("Verifier: ")
	if err != nil {
		return err
	}

	err = client.SetVerifier(verifier)
	if err != nil {
		return err
	}

	token, err := client.GetAccessToken(ctx)
	if err != nil {
		return err
	}

	config.Token = token.Token
	config.TokenSecret = token.Secret

	err = saveConfig(config)
	if err != nil {
		return err
	}

	_, _ = os.Stdout.WriteString("Login successful\n")

	return nil
}

// ensureConsumerCredentials prompts for missing consumer credentials and
// persists them. The secret is read without echo.
func ensureConsumerCredentials(config *Config) error {
	if config.ConsumerKey == "" {
		key, err := promptLine("Consumer key: ")
		if err != nil {
			return err
		}

		config.ConsumerKey = key
	}

	if config.ConsumerSecret == "" {
		_, _ = os.Stdout.WriteString("Consumer secret: ")

		secret, err := term.ReadPassword(int(os.Stdin.Fd()))

		_, _ = os.Stdout.WriteString("\n")

		if err != nil {
			return fmt.Errorf("reading consumer secret: %w", err)
		}

		config.ConsumerSecret = strings.TrimSpace(string(secret))
	}

	if config.ConsumerKey == "" || config.ConsumerSecret == "" {
		return ErrConsumerNotConfigured
	}

	// Keep the live viper state in sync so createClient sees the values
	// without a config reload.
	viper.Set("consumer_key", config.ConsumerKey)
	viper.Set("consumer_secret", config.ConsumerSecret)

	return saveConfig(config)
}

func promptLine(prompt string) (string, error) {
	_, _ = os.Stdout.WriteString(prompt)

	reader := bufio.NewReader(os.Stdin)

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	return strings.TrimSpace(line), nil
}
