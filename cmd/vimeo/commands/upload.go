package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const defaultChunkSize = 2 << 20 // 2 MiB

// ErrFileTooLarge means the file will not fit in the account's remaining
// upload space.
var ErrFileTooLarge = errors.New("file exceeds remaining upload quota")

// NewUploadCommand creates the upload command.
func NewUploadCommand() *cobra.Command {
	var (
		chunkSize int64
		verify    bool
	)

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a video file in chunks",
		Long: `Fetches an upload ticket, posts the file to the ticket's endpoint in
chunks, and completes the upload session. Requires a logged-in account
with write permission.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createUploadClient(cmd.Context())
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening file: %w", err)
			}
			defer func() { _ = file.Close() }()

			info, err := file.Stat()
			if err != nil {
				return fmt.Errorf("stating file: %w", err)
			}

			uploader, err := client.StartUpload(cmd.Context())
			if err != nil {
				return err
			}

			if quota := uploader.Quota(); quota != nil && quota.UploadSpace > 0 && info.Size() > quota.UploadSpace {
				return fmt.Errorf("%w: %d bytes needed, %d available", ErrFileTooLarge, info.Size(), quota.UploadSpace)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Uploading %s (%d bytes) with ticket %s\n",
				args[0], info.Size(), uploader.Ticket().ID)

			chunks := 0

			for {
				chunk := io.LimitReader(file, chunkSize)

				err = uploader.Upload(cmd.Context(), chunk)
				if err != nil {
					return fmt.Errorf("uploading chunk %d: %w", chunks, err)
				}

				chunks++

				if int64(chunks)*chunkSize >= info.Size() {
					break
				}
			}

			if verify {
				_, err = uploader.VerifyChunks(cmd.Context())
				if err != nil {
					return fmt.Errorf("verifying chunks: %w", err)
				}
			}

			err = uploader.Complete(cmd.Context(), filepath.Base(args[0]))
			if err != nil {
				return fmt.Errorf("completing upload: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Upload complete (%d chunks)\n", chunks)

			return nil
		},
	}

	cmd.Flags().Int64Var(&chunkSize, "chunk-size", defaultChunkSize, "chunk size in bytes")
	cmd.Flags().BoolVar(&verify, "verify", false, "verify received chunks before completing")

	return cmd
}
