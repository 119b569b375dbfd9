// Package catalog fetches the external exercise dataset consumed by plan
// generation. The dataset is a flat JSON array; it changes rarely, so the
// whole response body is cached in-process.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pulsefit/fitness-app/internal/domain"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const catalogCacheKey = "exercise-catalog"

// Client is a read-only client for the exercise catalog API.
type Client struct {
	catalogURL string
	cacheTTL   time.Duration
	cache      *freecache.Cache
	httpClient *http.Client
}

// NewClient creates a catalog client. A nil httpClient falls back to a client
// with a sane timeout.
func NewClient(catalogURL string, cacheTTL time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	megabyte := 1024 * 1024
	return &Client{
		catalogURL: catalogURL,
		cacheTTL:   cacheTTL,
		cache:      freecache.NewCache(20 * megabyte),
		httpClient: httpClient,
	}
}

// Exercises returns the full exercise catalog, served from cache when fresh.
func (c *Client) Exercises(ctx context.Context) ([]domain.ExerciseRecord, error) {
	if cached, err := c.cache.Get([]byte(catalogCacheKey)); err == nil {
		var records []domain.ExerciseRecord
		if err := json.Unmarshal(cached, &records); err == nil {
			log.Debugf("exercise catalog served from cache, %d records", len(records))
			return records, nil
		}
		c.cache.Del([]byte(catalogCacheKey))
	}

	body, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	var records []domain.ExerciseRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode exercise catalog: %w", err)
	}

	if err := c.cache.Set([]byte(catalogCacheKey), body, int(c.cacheTTL.Seconds())); err != nil {
		log.Warnf("failed to cache exercise catalog: %s", err)
	}

	log.Debugf("exercise catalog fetched, %d records", len(records))
	return records, nil
}

func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.catalogURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch exercise catalog: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Errorf("catalog response body close: %s", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch exercise catalog: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}
	return body, nil
}
