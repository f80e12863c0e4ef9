package utils

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"hash"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// hasherPool is a package-level pool of reusable BLAKE2b-256 instances.
var hasherPool = sync.Pool{
	New: func() any {
		h, _ := blake2b.New256(nil)
		return h
	},
}

// Hash computes the BLAKE2b-256 digest of data using a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashString returns the hex-encoded BLAKE2b-256 digest of data.
func HashString(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// CanonicalizeBody returns body in a form where semantically equal JSON
// documents compare equal: objects are re-encoded with sorted keys and
// insignificant whitespace removed. Non-JSON bodies are returned unchanged.
func CanonicalizeBody(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return body
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return body
	}

	// encoding/json sorts map keys on output.
	out, err := json.Marshal(v)
	if err != nil {
		return body
	}

	return out
}

// RequestKey returns the cache identity of a request:
//
//	"METHOD URL" for GET and HEAD
//	"METHOD URL #<blake2b-256 of canonical body>" for every other method
func RequestKey(method, url string, body []byte) string {
	method = strings.ToUpper(method)
	key := method + " " + url

	if method == http.MethodGet || method == http.MethodHead {
		return key
	}

	return key + " #" + HashString(CanonicalizeBody(body))
}
