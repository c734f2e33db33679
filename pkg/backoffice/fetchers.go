package backoffice

import (
	"context"
	"net/url"
	"slices"

	"github.com/benedict-erwin/agency-console/pkg/pager"
)

// statusEntry is one status as the API publishes it
type statusEntry struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// ListFetcher returns the fetch function of a list screen served at path
func ListFetcher[T any](c *Client, path string) pager.FetchFunc[T] {
	return func(ctx context.Context, filters pager.Filters) (*pager.Page[T], error) {
		query := url.Values{}
		for key, value := range filters.Params() {
			query.Set(key, value)
		}

		page := &pager.Page[T]{}
		if err := c.Get(ctx, path, query, page); err != nil {
			return nil, err
		}
		if page.Data == nil {
			page.Data = []T{}
		}
		return page, nil
	}
}

// StatusProvider returns the status option provider served at path. Successful
// results are cached per path until the status TTL expires.
func StatusProvider(c *Client, path string) pager.StatusFunc {
	return func(ctx context.Context) ([]pager.StatusOption, error) {
		if cached, ok := c.statuses.Get(path); ok {
			return slices.Clone(cached), nil
		}

		var entries []statusEntry
		if err := c.Get(ctx, path, nil, &entries); err != nil {
			return nil, err
		}

		options := make([]pager.StatusOption, 0, len(entries))
		for _, e := range entries {
			label := e.Label
			if label == "" {
				label = e.Code
			}
			options = append(options, pager.StatusOption{Label: label, Value: e.Code})
		}
		c.statuses.Add(path, options)
		return slices.Clone(options), nil
	}
}
