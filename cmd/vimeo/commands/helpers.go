package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/reelworks/go-vimeo/internal/constants"
	"github.com/reelworks/go-vimeo/pkg/vimeo"
	"github.com/reelworks/go-vimeo/pkg/vimeoclient"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

const defaultJSONIndent = "  "

// Common static errors used throughout the commands package.
var (
	ErrConsumerNotConfigured = errors.New("no consumer credentials configured, run 'vimeo login' or set --key/--secret")
	ErrNotLoggedIn           = errors.New("not logged in, run 'vimeo login' first")
	ErrUnknownConfigKey      = errors.New("unknown configuration key")
	ErrUnknownOutputFormat   = errors.New("unknown output format")
)

// Config is the persisted CLI configuration.
type Config struct {
	ConsumerKey    string `mapstructure:"consumer_key"    yaml:"consumer_key"`
	ConsumerSecret string `mapstructure:"consumer_secret" yaml:"consumer_secret"`
	Token          string `mapstructure:"token"           yaml:"token,omitempty"`
	TokenSecret    string `mapstructure:"token_secret"    yaml:"token_secret,omitempty"`
	Format         string `mapstructure:"format"          yaml:"format,omitempty"`
	CacheTimeout   int    `mapstructure:"cache_timeout"   yaml:"cache_timeout,omitempty"`
}

// loadConfig reads the current configuration from viper.
func loadConfig() *Config {
	config := &Config{}
	_ = viper.Unmarshal(config)

	return config
}

// saveConfig writes the configuration back to the config file.
func saveConfig(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".vimeo")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// createClient builds a client from the persisted configuration.
func createClient(ctx context.Context) (vimeo.Client, error) {
	config := loadConfig()

	if config.ConsumerKey == "" || config.ConsumerSecret == "" {
		return nil, ErrConsumerNotConfigured
	}

	clientConfig := vimeoclient.DefaultConfig(config.ConsumerKey, config.ConsumerSecret)
	clientConfig.Token = config.Token
	clientConfig.TokenSecret = config.TokenSecret
	clientConfig.Debug = viper.GetBool("verbose")

	if config.Format != "" {
		clientConfig.DefaultFormat = config.Format
	}

	if config.CacheTimeout > 0 {
		clientConfig.CacheTimeout = time.Duration(config.CacheTimeout) * time.Second
	}

	client, err := vimeoclient.New(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// createAuthenticatedClient is createClient plus a logged-in check.
func createAuthenticatedClient(ctx context.Context) (vimeo.Client, error) {
	config := loadConfig()
	if config.Token == "" || config.TokenSecret == "" {
		return nil, ErrNotLoggedIn
	}

	return createClient(ctx)
}

// createUploadClient is createAuthenticatedClient with the long transport
// timeout chunk uploads need.
func createUploadClient(ctx context.Context) (vimeo.Client, error) {
	config := loadConfig()
	if config.Token == "" || config.TokenSecret == "" {
		return nil, ErrNotLoggedIn
	}

	clientConfig := vimeoclient.DefaultConfig(config.ConsumerKey, config.ConsumerSecret)
	clientConfig.Token = config.Token
	clientConfig.TokenSecret = config.TokenSecret
	clientConfig.Debug = viper.GetBool("verbose")
	clientConfig.HTTPTimeout = constants.UploadHTTPTimeout

	client, err := vimeoclient.New(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("creating upload client: %w", err)
	}

	return client, nil
}

// outputObject renders any value as json or yaml per the output flag; table
// rendering stays with the individual commands.
func outputObject(value interface{}) error {
	switch viper.GetString("output") {
	case OutputFormatYAML:
		data, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshaling yaml: %w", err)
		}

		_, _ = os.Stdout.Write(data)

		return nil

	case OutputFormatJSON, OutputFormatTable:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("marshaling json: %w", err)
		}

		return nil

	default:
		return fmt.Errorf("%w: %s", ErrUnknownOutputFormat, viper.GetString("output"))
	}
}

// tableRequested reports whether the user asked for table output.
func tableRequested() bool {
	return viper.GetString("output") == OutputFormatTable
}
