package vocab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Service is the remote vocabulary/search service the gateway wraps.
// Cancellation and timeout policy belong to the implementation, not to
// callers; the gateway only adds caching on top.
type Service interface {
	// Scan returns every term of the vocabulary type.
	Scan(ctx context.Context, vocabularyType string) ([]Term, error)

	// Search runs an ad-hoc query against the vocabulary type.
	Search(ctx context.Context, vocabularyType, query string) ([]Term, error)

	// ReadMany fetches terms by id.
	ReadMany(ctx context.Context, vocabularyType string, ids []string) ([]Term, error)
}

// Client is an HTTP Service implementation against the repository's
// vocabulary API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a vocabulary API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// scanPageSize is large enough to fetch the repository vocabularies in one
// page; none of them approaches this size.
const scanPageSize = 10000

// Scan implements Service.
func (c *Client) Scan(ctx context.Context, vocabularyType string) ([]Term, error) {
	u := fmt.Sprintf("%s/api/vocabularies/%s?size=%d", c.BaseURL, url.PathEscape(vocabularyType), scanPageSize)
	return c.fetchHits(ctx, u, vocabularyType)
}

// Search implements Service.
func (c *Client) Search(ctx context.Context, vocabularyType, query string) ([]Term, error) {
	u := fmt.Sprintf("%s/api/vocabularies/%s?q=%s", c.BaseURL, url.PathEscape(vocabularyType), url.QueryEscape(query))
	return c.fetchHits(ctx, u, vocabularyType)
}

// ReadMany implements Service.
func (c *Client) ReadMany(ctx context.Context, vocabularyType string, ids []string) ([]Term, error) {
	terms := make([]Term, 0, len(ids))
	for _, id := range ids {
		u := fmt.Sprintf("%s/api/vocabularies/%s/%s", c.BaseURL, url.PathEscape(vocabularyType), url.PathEscape(id))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching %s term %q: %w", vocabularyType, id, err)
		}
		if resp.StatusCode == http.StatusNotFound {
			resp.Body.Close()
			continue
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return nil, fmt.Errorf("vocabulary API returned status %d for %s/%s: %s", resp.StatusCode, vocabularyType, id, string(body))
		}

		var term Term
		err = json.NewDecoder(resp.Body).Decode(&term)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding %s term %q: %w", vocabularyType, id, err)
		}
		terms = append(terms, term)
	}
	return terms, nil
}

func (c *Client) fetchHits(ctx context.Context, u, vocabularyType string) ([]Term, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching vocabulary %s: %w", vocabularyType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("vocabulary %q: %w", vocabularyType, ErrVocabularyNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("vocabulary API returned status %d for %s: %s", resp.StatusCode, vocabularyType, string(body))
	}

	var payload struct {
		Hits struct {
			Hits []Term `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding vocabulary %s response: %w", vocabularyType, err)
	}
	return payload.Hits.Hits, nil
}
