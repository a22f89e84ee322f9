// Package catalog reads products and categories from the remote product
// service. Every call is a single attempt with no caching.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"aradamart/internal/domain"
)

// NetworkError is a transport failure or a non-2xx response.
type NetworkError struct {
	Op     string
	Status int // 0 when the request never got a response
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: API Error: %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// NotFoundError is returned by GetProduct when the service reports non-success.
type NotFoundError struct {
	ID     int
	Status int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %d not found (status %d)", e.ID, e.Status)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for baseURL, e.g. https://dummyjson.com.
// A zero timeout leaves requests bounded only by the caller's context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.CatalogItem, error) {
	var page domain.CatalogPage
	if _, err := c.getJSON(ctx, "list products", "/products", &page); err != nil {
		return nil, err
	}
	return page.Products, nil
}

// ListCategories returns the category slugs.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var cats []domain.Category
	if _, err := c.getJSON(ctx, "list categories", "/products/categories", &cats); err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(cats))
	for _, cat := range cats {
		slugs = append(slugs, cat.Slug)
	}
	return slugs, nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (domain.CatalogItem, error) {
	var item domain.CatalogItem
	status, err := c.getJSON(ctx, "get product", "/products/"+strconv.Itoa(id), &item)
	if err != nil {
		if status != 0 {
			return domain.CatalogItem{}, &NotFoundError{ID: id, Status: status}
		}
		return domain.CatalogItem{}, err
	}
	return item, nil
}

// getJSON returns the response status when the service answered with a
// non-2xx code, and 0 otherwise.
func (c *Client) getJSON(ctx context.Context, op, path string, target any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &NetworkError{Op: op, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return 0, &NetworkError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return 0, nil
}
