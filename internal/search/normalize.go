// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search issues web-search queries against the search provider
// under a concurrency bound and deduplicates results by normalized URL.
package search

import (
	"net/url"
	"strings"
)

// trackingPrefixes lists query-parameter key prefixes that carry tracking
// state rather than content identity. Matched case-insensitively.
var trackingPrefixes = []string{"utm_", "gclid", "fbclid", "mc_eid", "_ga"}

// NormalizeURL canonicalizes a URL for deduplication: the scheme is
// lowered to "http" so the https and http forms of a page collapse,
// tracking parameters are dropped, one trailing slash is stripped from
// the path, the host is lowercased and loses a leading "www." label. Two
// URLs that differ only in those respects normalize to the same string.
// The transformation is pure and idempotent; unparseable input is
// returned unchanged.
func NormalizeURL(raw string) string {
	s := raw
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return raw
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme == "https" {
		scheme = "http"
	}
	u.Scheme = scheme

	host := strings.ToLower(u.Host)
	host = strings.TrimPrefix(host, "www.")
	u.Host = host

	// Strip exactly one trailing slash. Repeated trailing slashes are
	// left alone so that normalizing twice gives the same answer as
	// normalizing once.
	if strings.HasSuffix(u.Path, "/") && !strings.HasSuffix(u.Path, "//") {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}
	u.RawQuery = stripTrackingParams(u.RawQuery)

	return u.String()
}

// stripTrackingParams removes tracking parameters from a raw query
// string, keeping the remaining parameters in their original relative
// order.
func stripTrackingParams(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	var kept []string
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key := pair
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key = pair[:i]
		}
		if isTrackingParam(key) {
			continue
		}
		kept = append(kept, pair)
	}
	return strings.Join(kept, "&")
}

func isTrackingParam(key string) bool {
	lower := strings.ToLower(key)
	for _, prefix := range trackingPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
