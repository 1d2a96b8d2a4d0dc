package commands

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tableRequested() {
				return outputObject(map[string]string{
					"version":    version,
					"commit":     commit,
					"build_date": date,
					"go_version": runtime.Version(),
					"platform":   runtime.GOOS + "/" + runtime.GOARCH,
				})
			}

			_, _ = fmt.Fprintf(os.Stdout, "vimeo %s (commit %s, built %s, %s, %s/%s)\n",
				version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH)

			return nil
		},
	}
}
