package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
	}

	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigListCommand())

	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			value, err := configValue(config, args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(os.Stdout, value)

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			return saveConfig(config)
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			return saveConfig(config)
		},
	}
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			// Never echo secrets in full.
			display := map[string]interface{}{
				"consumer_key":    config.ConsumerKey,
				"consumer_secret": redact(config.ConsumerSecret),
				"token":           redact(config.Token),
				"token_secret":    redact(config.TokenSecret),
				"format":          config.Format,
				"cache_timeout":   config.CacheTimeout,
			}

			return outputObject(display)
		},
	}
}

func configValue(config *Config, key string) (string, error) {
	switch key {
	case "consumer_key":
		return config.ConsumerKey, nil
	case "consumer_secret":
		return config.ConsumerSecret, nil
	case "token":
		return config.Token, nil
	case "token_secret":
		return config.TokenSecret, nil
	case "format":
		return config.Format, nil
	case "cache_timeout":
		return strconv.Itoa(config.CacheTimeout), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "consumer_key":
		config.ConsumerKey = value
	case "consumer_secret":
		config.ConsumerSecret = value
	case "token":
		config.Token = value
	case "token_secret":
		config.TokenSecret = value
	case "format":
		config.Format = value
	case "cache_timeout":
		if value == "" {
			config.CacheTimeout = 0

			return nil
		}

		timeout, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cache_timeout must be an integer number of seconds: %w", err)
		}

		config.CacheTimeout = timeout
	default:
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}

	return nil
}

func redact(value string) string {
	if value == "" {
		return ""
	}

	return "(set)"
}
