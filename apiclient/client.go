// Package apiclient reads article and user lists from the back office JSON
// API. It backs the dashboard when the API runs as a separate process.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"admin-backoffice/models"
	"admin-backoffice/querysync"
	"admin-backoffice/store"
)

type tokenKey struct{}

// WithToken attaches the bearer token forwarded on list requests.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey{}).(string)
	return t
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Articles returns the list source for one article type.
func (c *Client) Articles(articleType string) store.Source[models.Article] {
	return store.SourceFunc[models.Article](func(ctx context.Context, q querysync.Params) (store.Payload[models.Article], error) {
		v := q.Values()
		if articleType != "" {
			v.Set("type", articleType)
		}
		var body models.ArticleListResponse
		if err := c.get(ctx, "/api/v1/articles", v, &body); err != nil {
			return store.Payload[models.Article]{}, err
		}
		return store.Payload[models.Article]{Meta: body.Meta, Records: body.Articles}, nil
	})
}

func (c *Client) Users() store.Source[models.User] {
	return store.SourceFunc[models.User](func(ctx context.Context, q querysync.Params) (store.Payload[models.User], error) {
		var body models.UserListResponse
		if err := c.get(ctx, "/api/v1/users", q.Values(), &body); err != nil {
			return store.Payload[models.User]{}, err
		}
		return store.Payload[models.User]{Meta: body.Meta, Records: body.Users}, nil
	})
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, querysync.Location(c.baseURL+path, q), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure models.FailureResponse
		if err := json.NewDecoder(resp.Body).Decode(&failure); err != nil || failure.Message == "" {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return &Error{StatusCode: resp.StatusCode, Message: failure.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Error is a failure reported by the API in its {"message": ...} shape.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}
