package reviews

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Fetcher downloads review pages.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher wraps client; a nil client gets a default one.
func NewFetcher(client *resty.Client) *Fetcher {
	if client == nil {
		client = resty.New()
	}
	return &Fetcher{client: client}
}

// Fetch returns the body of link. Non-2xx responses are errors.
func (f *Fetcher) Fetch(ctx context.Context, link string) (string, error) {
	res, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html").
		Get(link)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", link, err)
	}
	if res.IsError() {
		return "", fmt.Errorf("fetch %s: unexpected status %d", link, res.StatusCode())
	}
	return res.String(), nil
}
