package vimeo

import (
	"net/http"

	"github.com/beevik/etree"
)

// Params carries the query parameters of an API call. Being a map, two
// calls with the same parameters hash to the same cache key regardless of
// the order arguments were supplied in.
type Params map[string]string

// Clone returns a shallow copy, so dispatch can apply defaults without
// mutating the caller's map.
func (p Params) Clone() Params {
	clone := make(Params, len(p))
	for k, v := range p {
		clone[k] = v
	}

	return clone
}

// Token is the public view of an OAuth credential pair.
type Token struct {
	Token  string `json:"oauth_token"        yaml:"oauth_token"`
	Secret string `json:"oauth_token_secret" yaml:"oauth_token_secret"`
}

// Result is a processed API response.
//
// Body always holds the raw response bytes. Exactly one of Payload or XML is
// populated for the parsed formats; for any other format both stay nil and
// Body is the whole answer.
type Result struct {
	// Format the response was parsed as ("json", "xml", or passthrough).
	Format string

	// Body is the raw response body.
	Body []byte

	// Payload is the unwrapped JSON content: the envelope's stat and
	// generated_in fields are removed, and a sole remaining key is
	// unwrapped to its value.
	Payload interface{}

	// XML is the parsed element tree for xml responses.
	XML *etree.Document
}

// RawResult is an unprocessed response: headers and body exactly as the
// transport returned them.
type RawResult struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// UploadTicket identifies an upload session obtained from
// videos.upload.getTicket.
type UploadTicket struct {
	ID       string `json:"id"       yaml:"id"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

// UploadQuota reports the account's upload allowance from
// videos.upload.getQuota.
type UploadQuota struct {
	SDQuota     bool  `json:"sd_quota"     yaml:"sd_quota"`
	HDQuota     bool  `json:"hd_quota"     yaml:"hd_quota"`
	UploadSpace int64 `json:"upload_space" yaml:"upload_space"`
}

// Video is the subset of video metadata the typed clients decode.
type Video struct {
	ID          string `json:"id"          yaml:"id"`
	Title       string `json:"title"       yaml:"title"`
	Description string `json:"description" yaml:"description"`
	UploadDate  string `json:"upload_date" yaml:"upload_date"`
	Owner       Person `json:"owner"       yaml:"owner"`
}

// Person is a Vimeo user as returned by the people and videos methods.
type Person struct {
	ID          string `json:"id"          yaml:"id"`
	Username    string `json:"username"    yaml:"username"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	ProfileURL  string `json:"profileurl,omitempty" yaml:"profileurl,omitempty"`
}

// Channel is a Vimeo channel as returned by the channels methods.
type Channel struct {
	ID          string `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url"         yaml:"url"`
}

// Album is a Vimeo album as returned by the albums methods.
type Album struct {
	ID          string `json:"id"          yaml:"id"`
	Title       string `json:"title"       yaml:"title"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url"         yaml:"url"`
}

// Group is a Vimeo group as returned by the groups methods.
type Group struct {
	ID          string `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// ActivityItem is a single entry from the activity feeds.
type ActivityItem struct {
	Type      string `json:"type"       yaml:"type"`
	Time      string `json:"time"       yaml:"time"`
	SubjectID string `json:"subject_id" yaml:"subject_id"`
	UserID    string `json:"user_id"    yaml:"user_id"`
}
