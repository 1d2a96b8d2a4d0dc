package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// NewVideosCommand creates the videos command group.
func NewVideosCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "videos",
		Short: "Browse videos",
	}

	cmd.AddCommand(newVideosInfoCommand())
	cmd.AddCommand(newVideosListCommand())
	cmd.AddCommand(newVideosSearchCommand())

	return cmd
}

func newVideosInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info VIDEO_ID",
		Short: "Show a video's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			video, err := client.Videos().GetInfo(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !tableRequested() {
				return outputObject(video)
			}

			return renderVideosTable([]vimeo.Video{*video})
		},
	}
}

func newVideosListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list USER_ID",
		Short: "List a user's videos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			videos, err := client.Videos().GetList(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !tableRequested() {
				return outputObject(videos)
			}

			return renderVideosTable(videos)
		},
	}
}

func newVideosSearchCommand() *cobra.Command {
	var (
		page    string
		perPage string
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search public videos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			params := vimeo.Params{}
			if page != "" {
				params["page"] = page
			}

			if perPage != "" {
				params["per_page"] = perPage
			}

			videos, err := client.Videos().Search(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}

			if !tableRequested() {
				return outputObject(videos)
			}

			return renderVideosTable(videos)
		},
	}

	cmd.Flags().StringVar(&page, "page", "", "page to fetch")
	cmd.Flags().StringVar(&perPage, "per-page", "", "results per page")

	return cmd
}

func renderVideosTable(videos []vimeo.Video) error {
	if len(videos) == 0 {
		_, _ = os.Stdout.WriteString("No videos found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Owner", "Uploaded")

	for _, video := range videos {
		_ = table.Append(video.ID, video.Title, video.Owner.DisplayName, video.UploadDate)
	}

	return table.Render()
}
