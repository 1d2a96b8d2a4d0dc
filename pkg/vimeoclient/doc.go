// Package vimeoclient provides the main entry point for creating Vimeo
// Advanced API clients.
package vimeoclient
