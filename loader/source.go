// Package loader turns an input source into the schema items to compile.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ridoystarlord/tsmodel/database"
	"github.com/ridoystarlord/tsmodel/introspect"
	"github.com/ridoystarlord/tsmodel/schema"
	"github.com/ridoystarlord/tsmodel/utils"
)

// DatabaseSource selects the database named by DATABASE_URL.
const DatabaseSource = "db"

// Options tunes how sources are read.
type Options struct {
	// HTTPClient fetches http(s) sources. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// SchemaName is the Postgres schema introspected for database sources.
	SchemaName string
}

// Load reads schema items from source: a YAML file path, an http(s) URL
// serving a YAML document, a postgres:// URL, or DatabaseSource.
func Load(ctx context.Context, source string, opts Options) ([]schema.Item, error) {
	switch {
	case source == DatabaseSource:
		url, err := utils.DatabaseURL()
		if err != nil {
			return nil, err
		}
		return loadDatabase(ctx, url, opts)
	case isDatabaseURL(source):
		return loadDatabase(ctx, source, opts)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return loadURL(ctx, source, opts)
	default:
		return LoadItemsFromYAML(source)
	}
}

func isDatabaseURL(source string) bool {
	return strings.HasPrefix(source, "postgres://") || strings.HasPrefix(source, "postgresql://")
}

func loadURL(ctx context.Context, url string, opts Options) ([]schema.Item, error) {
	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching schema: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching schema: unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	return ParseYAML(data)
}

func loadDatabase(ctx context.Context, url string, opts Options) ([]schema.Item, error) {
	pool, err := database.NewPool(ctx, url)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	items, err := introspect.Introspect(ctx, pool, opts.SchemaName)
	if err != nil {
		return nil, fmt.Errorf("introspecting database: %w", err)
	}
	return items, nil
}
