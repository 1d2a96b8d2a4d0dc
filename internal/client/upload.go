package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strconv"
	"sync"

	internalhttp "github.com/reelworks/go-vimeo/internal/http"
	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// ChunkUploader implements vimeo.Uploader: it posts file chunks to the
// endpoint named by an upload ticket, one signed POST per chunk. The chunk
// counter advances only on success, so a failed chunk can be retried by
// calling Upload again.
type ChunkUploader struct {
	caller     vimeo.MethodCaller
	httpClient *internalhttp.Client
	ticket     vimeo.UploadTicket
	quota      *vimeo.UploadQuota

	mu      sync.Mutex
	chunkID int
}

// NewUploader creates an uploader bound to the given ticket. quota may be
// nil when the caller skipped the quota check.
func NewUploader(caller vimeo.MethodCaller, httpClient *internalhttp.Client, ticket vimeo.UploadTicket, quota *vimeo.UploadQuota) (*ChunkUploader, error) {
	if ticket.Endpoint == "" || ticket.ID == "" {
		return nil, vimeo.ErrMissingUploadTicket
	}

	return &ChunkUploader{
		caller:     caller,
		httpClient: httpClient,
		ticket:     ticket,
		quota:      quota,
	}, nil
}

// Upload posts the next chunk and advances the chunk counter. The signed
// parameters are the ticket and chunk ids; the file data itself rides in a
// multipart field outside the OAuth signature, per the API docs.
func (u *ChunkUploader) Upload(ctx context.Context, chunk io.Reader) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	data, err := io.ReadAll(chunk)
	if err != nil {
		return fmt.Errorf("reading chunk: %w", err)
	}

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file_data", fmt.Sprintf("chunk-%d", u.chunkID))
	if err != nil {
		return fmt.Errorf("creating form file: %w", err)
	}

	_, err = part.Write(data)
	if err != nil {
		return fmt.Errorf("writing chunk to form: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return fmt.Errorf("closing multipart writer: %w", err)
	}

	query := url.Values{}
	query.Set("ticket_id", u.ticket.ID)
	query.Set("chunk_id", strconv.Itoa(u.chunkID))

	_, err = u.httpClient.PostRaw(ctx, u.ticket.Endpoint, query, buf.Bytes(), writer.FormDataContentType())
	if err != nil {
		return fmt.Errorf("uploading chunk %d: %w", u.chunkID, err)
	}

	u.chunkID++

	return nil
}

// VerifyChunks asks the API which chunks arrived intact. The check goes out
// uncached, so it always reflects the server's current state.
func (u *ChunkUploader) VerifyChunks(ctx context.Context) (*vimeo.Result, error) {
	return u.uncachedCall(ctx, "videos.upload.verifyChunks", vimeo.Params{
		"ticket_id": u.ticket.ID,
	})
}

// Complete finalizes the upload session under the given filename.
func (u *ChunkUploader) Complete(ctx context.Context, filename string) error {
	params := vimeo.Params{"ticket_id": u.ticket.ID}
	if filename != "" {
		params["filename"] = filename
	}

	_, err := u.uncachedCall(ctx, "videos.upload.complete", params)

	return err
}

// Ticket returns the ticket this uploader is bound to.
func (u *ChunkUploader) Ticket() vimeo.UploadTicket {
	return u.ticket
}

// Quota returns the account quota fetched when the upload started, if any.
func (u *ChunkUploader) Quota() *vimeo.UploadQuota {
	return u.quota
}

func (u *ChunkUploader) uncachedCall(ctx context.Context, method string, params vimeo.Params) (*vimeo.Result, error) {
	params = params.Clone()
	params["format"] = vimeo.FormatJSON

	raw, err := u.caller.CallRaw(ctx, method, params)
	if err != nil {
		return nil, err
	}

	result, err := vimeo.ParseResult(vimeo.FormatJSON, raw.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return result, nil
}
