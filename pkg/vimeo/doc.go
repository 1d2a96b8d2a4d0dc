// Package vimeo defines the public surface of the Vimeo Advanced API (v2)
// client: the Client interface, configuration, typed errors, the method
// catalog, response parsing, and the response cache.
//
// Use github.com/reelworks/go-vimeo/pkg/vimeoclient to construct a client.
package vimeo
