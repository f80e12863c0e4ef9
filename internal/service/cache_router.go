package service

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

type routeKind int

const (
	// routePassThrough: foreign origin, forwarded untouched.
	routePassThrough routeKind = iota
	// routeData: API prefix, network-first over the data partition.
	routeData
	// routeStatic: shell manifest entry, static extension or static
	// destination, cache-first over the asset partition.
	routeStatic
	// routeDocument: anything else, network-first over the asset partition
	// with the app shell as fallback.
	routeDocument
)

func (k routeKind) String() string {
	switch k {
	case routePassThrough:
		return "pass-through"
	case routeData:
		return "data"
	case routeStatic:
		return "static"
	case routeDocument:
		return "document"
	default:
		return "unknown"
	}
}

type cacheRouter struct {
	origin     *url.URL
	apiPrefix  string
	manifest   map[string]struct{}
	extensions map[string]struct{}
}

func newCacheRouter(app config.App, cache config.Cache) (*cacheRouter, error) {
	origin, err := url.Parse(app.Origin)
	if err != nil || origin.Scheme == "" || origin.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAppOrigin, app.Origin)
	}

	r := &cacheRouter{
		origin:     origin,
		apiPrefix:  app.APIPrefix,
		manifest:   make(map[string]struct{}, len(cache.ShellManifest)),
		extensions: make(map[string]struct{}, len(cache.StaticExtensions)),
	}
	for _, p := range cache.ShellManifest {
		r.manifest[p] = struct{}{}
	}
	for _, ext := range cache.StaticExtensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.extensions[ext] = struct{}{}
	}

	return r, nil
}

// route classifies req; the first matching rule wins.
func (r *cacheRouter) route(req models.Request) routeKind {
	if !r.sameOrigin(req.URL) {
		return routePassThrough
	}

	p := req.URL.Path
	if p == "" {
		p = "/"
	}

	if r.apiPrefix != "" && strings.HasPrefix(p, r.apiPrefix) {
		return routeData
	}
	if r.isStatic(p, req.Destination) {
		return routeStatic
	}
	return routeDocument
}

func (r *cacheRouter) isStatic(p string, dest models.Destination) bool {
	switch dest {
	case models.DestinationStyle, models.DestinationScript, models.DestinationImage:
		return true
	}

	if _, ok := r.manifest[p]; ok {
		return true
	}

	_, ok := r.extensions[strings.ToLower(path.Ext(p))]
	return ok
}

func (r *cacheRouter) sameOrigin(u *url.URL) bool {
	if u == nil {
		return false
	}
	return strings.EqualFold(u.Scheme, r.origin.Scheme) && strings.EqualFold(u.Host, r.origin.Host)
}

// resolve turns a path of the origin into an absolute URL.
func (r *cacheRouter) resolve(p string) *url.URL {
	ref, err := url.Parse(p)
	if err != nil {
		ref = &url.URL{Path: p}
	}
	return r.origin.ResolveReference(ref)
}
