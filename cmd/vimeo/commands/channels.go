package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// NewChannelsCommand creates the channels command group.
func NewChannelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channels",
		Short: "Browse channels",
	}

	cmd.AddCommand(newChannelsInfoCommand())
	cmd.AddCommand(newChannelsListCommand())

	return cmd
}

func newChannelsInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info CHANNEL_ID",
		Short: "Show a channel's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			channel, err := client.Channels().GetInfo(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !tableRequested() {
				return outputObject(channel)
			}

			return renderChannelsTable([]vimeo.Channel{*channel})
		},
	}
}

func newChannelsListCommand() *cobra.Command {
	var sort string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List channels",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			params := vimeo.Params{}
			if sort != "" {
				params["sort"] = sort
			}

			channels, err := client.Channels().GetAll(cmd.Context(), params)
			if err != nil {
				return err
			}

			if !tableRequested() {
				return outputObject(channels)
			}

			return renderChannelsTable(channels)
		},
	}

	cmd.Flags().StringVar(&sort, "sort", "", "sort order (newest, oldest, most_videos, most_subscribed)")

	return cmd
}

func renderChannelsTable(channels []vimeo.Channel) error {
	if len(channels) == 0 {
		_, _ = os.Stdout.WriteString("No channels found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "URL")

	for _, channel := range channels {
		_ = table.Append(channel.ID, channel.Name, channel.URL)
	}

	return table.Render()
}

// NewAlbumsCommand creates the albums command group.
func NewAlbumsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "albums",
		Short: "Browse albums",
	}

	cmd.AddCommand(newAlbumsListCommand())
	cmd.AddCommand(newAlbumsVideosCommand())

	return cmd
}

func newAlbumsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list USER_ID",
		Short: "List a user's albums",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			albums, err := client.Albums().GetAll(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !tableRequested() {
				return outputObject(albums)
			}

			if len(albums) == 0 {
				_, _ = os.Stdout.WriteString("No albums found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Title", "URL")

			for _, album := range albums {
				_ = table.Append(album.ID, album.Title, album.URL)
			}

			return table.Render()
		},
	}
}

func newAlbumsVideosCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "videos ALBUM_ID",
		Short: "List the videos in an album",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			videos, err := client.Albums().GetVideos(cmd.Context(), args[0])
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
