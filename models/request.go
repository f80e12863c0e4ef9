package models

import (
	"net/http"
	"net/url"
	"strings"
)

// RequestMode mirrors the fetch "mode" of an intercepted request. Only
// navigations are treated specially.
type RequestMode string

const (
	ModeNavigate RequestMode = "navigate"
	ModeCORS     RequestMode = "cors"
	ModeNoCORS   RequestMode = "no-cors"
)

// Destination mirrors the fetch "destination" (resource type) of a request.
type Destination string

const (
	DestinationDocument Destination = "document"
	DestinationStyle    Destination = "style"
	DestinationScript   Destination = "script"
	DestinationImage    Destination = "image"
	DestinationFont     Destination = "font"
	DestinationEmpty    Destination = ""
)

// Request is a request intercepted by the agent on behalf of a UI surface.
// The body is fully buffered so it can be hashed, forwarded and queued.
type Request struct {
	Method      string
	URL         *url.URL
	Header      http.Header
	Body        []byte
	Mode        RequestMode
	Destination Destination
}

// IsNavigation reports whether the request loads a page document.
func (r Request) IsNavigation() bool {
	if r.Mode == ModeNavigate {
		return true
	}
	if r.Destination == DestinationDocument {
		return true
	}

	// no fetch metadata: fall back to the Accept header of a plain GET
	if r.Mode == "" && r.Destination == DestinationEmpty && r.Method == http.MethodGet {
		return strings.Contains(r.Header.Get("Accept"), "text/html")
	}

	return false
}

// IsMutation reports whether the method changes server state. Mutations are
// never served from cache and are queued when the origin is unreachable.
func (r Request) IsMutation() bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// ResponseSource tells the caller where a response came from.
type ResponseSource string

const (
	SourceNetwork  ResponseSource = "network"
	SourceCache    ResponseSource = "cache"
	SourceFallback ResponseSource = "fallback"
	SourceQueued   ResponseSource = "queued"
)

// Response is a fully buffered response returned to the UI.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Source     ResponseSource
}

// ContentType returns the Content-Type header of the response.
func (r Response) ContentType() string {
	if r.Header == nil {
		return ""
	}
	return r.Header.Get("Content-Type")
}
