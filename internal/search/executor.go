// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/company-research/pkg/types"
)

// defaultExcludeDomains suppresses low-signal sources (social media,
// forums, shopping) when the caller supplies no exclude list.
var defaultExcludeDomains = []string{
	"facebook.com",
	"instagram.com",
	"twitter.com",
	"x.com",
	"tiktok.com",
	"youtube.com",
	"pinterest.com",
	"snapchat.com",
	"whatsapp.com",
	"reddit.com",
	"quora.com",
	"medium.com",
	"wordpress.com",
	"blogspot.com",
	"amazon.com",
	"alibaba.com",
	"hepsiburada.com",
	"trendyol.com",
	"n11.com",
}

// Executor fans queries out to the search provider under a global
// concurrency bound. It is the only component holding mutable shared
// state during a run, and that state is just the admission permits
// inside the errgroup.
type Executor struct {
	Provider Provider
	Config   types.SearchConfig
}

// SearchMany runs every query against the provider, at most
// Config.MaxConcurrent in flight at once, and returns one ResearchResult
// per query in input order. A failed or timed-out call degrades to an
// empty result set for that query and never aborts its siblings;
// failures are noted on w.
func (e *Executor) SearchMany(ctx context.Context, queries []string, opts Options, w io.Writer) []types.ResearchResult {
	if opts.ExcludeDomains == nil {
		opts.ExcludeDomains = e.Config.ExcludeDomains
	}
	if opts.ExcludeDomains == nil {
		opts.ExcludeDomains = defaultExcludeDomains
	}
	if opts.IncludeDomains == nil {
		opts.IncludeDomains = e.Config.IncludeDomains
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = e.Config.MaxResults
	}

	maxConcurrent := e.Config.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}

	results := make([]types.ResearchResult, len(queries))

	// Workers share w; writes are serialized so any io.Writer is safe.
	var wmu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, query := range queries {
		g.Go(func() error {
			callCtx := gctx
			if e.Config.Timeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(gctx, e.Config.Timeout)
				defer cancel()
			}

			found, err := e.Provider.Search(callCtx, query, opts)
			if err != nil {
				wmu.Lock()
				fmt.Fprintf(w, "warning: search %q failed: %v\n", query, err)
				wmu.Unlock()
				found = nil
			}
			results[i] = types.ResearchResult{Query: query, Results: found}
			return nil
		})
	}

	// Workers only record failures, never return them.
	g.Wait()

	return results
}
