package models

import (
	"net/http"
	"time"
)

// CachedResponse is a stored network response inside a cache partition.
// Entries are keyed by request identity; writing the same
// key again overwrites the previous entry.
type CachedResponse struct {
	// Partition is the name of the cache partition the entry belongs to.
	Partition string `json:"partition"`

	// Key is the request identity: method, URL and, for methods other than
	// GET and HEAD, a hash of the canonicalized body.
	Key string `json:"key"`

	// Method and URL of the request that produced the response.
	Method string `json:"method"`
	URL    string `json:"url"`

	StatusCode  int         `json:"status_code"`
	ContentType string      `json:"content_type"`
	Header      http.Header `json:"header,omitempty"`
	Payload     []byte      `json:"payload"`

	// CapturedAt is the moment the response was stored.
	CapturedAt time.Time `json:"captured_at"`
}

// ToResponse converts the entry into a response served from cache.
func (c CachedResponse) ToResponse() Response {
	header := c.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	if c.ContentType != "" {
		header.Set("Content-Type", c.ContentType)
	}

	return Response{
		StatusCode: c.StatusCode,
		Header:     header,
		Body:       append([]byte(nil), c.Payload...),
		Source:     SourceCache,
	}
}
