package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// Static errors for argument parsing.
var (
	ErrInvalidParameter = errors.New("parameters must be key=value pairs")
)

// NewCallCommand creates the generic method dispatch command.
func NewCallCommand() *cobra.Command {
	var (
		format string
		raw    bool
	)

	cmd := &cobra.Command{
		Use:   "call METHOD [KEY=VALUE ...]",
		Short: "Call any API method by name",
		Long: `Dispatches a signed request for the named API method. The method may be
given with dots or underscores (videos.getInfo or videos_getInfo), with or
without the vimeo. prefix. Parameters are key=value pairs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			if format != "" {
				params["format"] = format
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			if raw {
				result, err := client.CallRaw(cmd.Context(), args[0], params)
				if err != nil {
					return err
				}

				_, _ = os.Stdout.Write(result.Body)

				return nil
			}

			result, err := client.Call(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}

			return outputCallResult(result)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "response format (json, xml, ...)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the unprocessed response body")

	return cmd
}

func parseParams(args []string) (vimeo.Params, error) {
	params := vimeo.Params{}

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParameter, arg)
		}

		params[key] = value
	}

	return params, nil
}

func outputCallResult(result *vimeo.Result) error {
	switch result.Format {
	case vimeo.FormatJSON:
		return outputObject(result.Payload)

	case vimeo.FormatXML:
		text, err := result.XML.WriteToString()
		if err != nil {
			return fmt.Errorf("rendering xml: %w", err)
		}

		_, _ = os.Stdout.WriteString(text)

		return nil

	default:
		_, _ = os.Stdout.Write(result.Body)

		return nil
	}
}
