// internal/country/provider.go
//
// Provider combines the HTTP client and the file cache into the single
// source of country data the rest of the program sees.
//
// Resolution order:
//   1. Fresh cache (younger than the TTL) → use it, skip the network.
//   2. Fetch from the API → rewrite the cache, use the result.
//   3. Fetch failed but a stale cache exists → use the stale copy.
//   4. Nothing → ErrUnavailable.

package country

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ErrUnavailable means neither the network nor a local cache could supply
// country data. The session cannot start.
var ErrUnavailable = errors.New("country data unavailable")

// Fetcher is the network half of a Provider.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Country, error)
}

// Provider resolves country data per the order documented above.
type Provider struct {
	client Fetcher
	cache  *Cache
}

// NewProvider wires a Fetcher and a Cache together.
func NewProvider(client Fetcher, cache *Cache) *Provider {
	return &Provider{client: client, cache: cache}
}

// Countries returns a non-empty validated collection or ErrUnavailable.
func (p *Provider) Countries(ctx context.Context) ([]Country, error) {
	cached, fresh, cacheErr := p.cache.Load()
	if cacheErr == nil && fresh {
		log.Debug().Int("count", len(cached)).Msg("using fresh country cache")
		return cached, nil
	}

	fetched, fetchErr := p.client.Fetch(ctx)
	if fetchErr == nil {
		if err := p.cache.Store(fetched); err != nil {
			// A write failure only costs the next run its cache.
			log.Warn().Err(err).Msg("could not write country cache")
		}
		return fetched, nil
	}

	if cacheErr == nil {
		log.Warn().Err(fetchErr).Msg("fetch failed, falling back to cached countries")
		return cached, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnavailable, fetchErr)
}
