package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/amaumene/goflix/internal/config"
	"github.com/amaumene/goflix/internal/metrics"
	"github.com/amaumene/goflix/internal/models"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// maxBodySize caps how much of a response body is read
const maxBodySize = 10 * 1024 * 1024

// Client handles communication with the TMDB API
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	images     models.Images
	httpClient *http.Client
	cache      *cache.Cache // nil when caching is disabled
	logger     *logrus.Logger
}

// NewClient creates a new TMDB API client
func NewClient(cfg *config.Config, logger *logrus.Logger) (*Client, error) {
	if cfg.TMDBAPIKey == "" {
		return nil, fmt.Errorf("TMDB API key is required")
	}
	if _, err := url.Parse(cfg.TMDBBaseURL); err != nil {
		return nil, fmt.Errorf("invalid TMDB base URL: %w", err)
	}

	c := &Client{
		baseURL:    cfg.TMDBBaseURL,
		apiKey:     cfg.TMDBAPIKey,
		language:   cfg.TMDBLanguage,
		images:     models.Images{BaseURL: cfg.TMDBImageBaseURL},
		httpClient: &http.Client{Timeout: cfg.TMDBTimeout},
		logger:     logger,
	}
	if cfg.TMDBCacheTTL > 0 {
		c.cache = cache.New(cfg.TMDBCacheTTL, 2*cfg.TMDBCacheTTL)
	}

	return c, nil
}

// Images returns the image URL builder matching this client's configuration
func (c *Client) Images() models.Images {
	return c.images
}

// getJSON performs a GET against the API and decodes the body into result.
// Errors wrap models.ErrTransport or models.ErrDecode. Successful bodies are
// cached by path and query (without the credential) unless noCache is set.
func (c *Client) getJSON(ctx context.Context, group, path string, params url.Values, noCache bool, result interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	if c.language != "" {
		params.Set("language", c.language)
	}
	cacheKey := path + "?" + params.Encode()

	if c.cache != nil && !noCache {
		if body, ok := c.cache.Get(cacheKey); ok {
			metrics.TMDBCacheHits.Inc()
			return c.decode(group, body.([]byte), result)
		}
	}

	params.Set("api_key", c.apiKey)
	fullURL := c.baseURL + path + "?" + params.Encode()

	c.logger.WithFields(logrus.Fields{
		"endpoint": group,
		"path":     path,
	}).Debug("Making TMDB API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", models.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "goflix/1.0")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.TMDBRequests.WithLabelValues(group, metrics.OutcomeTransport).Inc()
		return fmt.Errorf("%w: request failed: %v", models.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.TMDBRequests.WithLabelValues(group, metrics.OutcomeStatus).Inc()
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: API request failed with status %d: %s", models.ErrTransport, resp.StatusCode, string(bodyBytes))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		metrics.TMDBRequests.WithLabelValues(group, metrics.OutcomeTransport).Inc()
		return fmt.Errorf("%w: failed to read response: %v", models.ErrTransport, err)
	}

	if err := c.decode(group, body, result); err != nil {
		return err
	}

	metrics.TMDBRequests.WithLabelValues(group, metrics.OutcomeOK).Inc()
	c.logger.WithFields(logrus.Fields{
		"endpoint":    group,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("TMDB API request completed")

	if c.cache != nil && !noCache {
		c.cache.SetDefault(cacheKey, body)
	}
	return nil
}

func (c *Client) decode(group string, body []byte, result interface{}) error {
	if err := json.Unmarshal(body, result); err != nil {
		metrics.TMDBRequests.WithLabelValues(group, metrics.OutcomeDecode).Inc()
		return fmt.Errorf("%w: %v", models.ErrDecode, err)
	}
	return nil
}
