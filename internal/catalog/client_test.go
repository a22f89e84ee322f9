package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsJSON = `{
  "products": [
    {"id": 1, "title": "Essence Mascara Lash Princess", "description": "d", "price": 9.99,
     "discountPercentage": 7.17, "rating": 4.94, "stock": 5, "brand": "Essence",
     "category": "beauty", "thumbnail": "https://cdn/1.png", "images": ["https://cdn/1a.png"]},
    {"id": 2, "title": "Eyeshadow Palette", "description": "d", "price": 19.99,
     "rating": 3.28, "stock": 44, "category": "beauty", "thumbnail": "https://cdn/2.png"}
  ],
  "total": 194, "skip": 0, "limit": 30
}`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(productsJSON))
	})
	mux.HandleFunc("GET /products/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"slug":"beauty","name":"Beauty","url":"u1"},{"slug":"fragrances","name":"Fragrances","url":"u2"}]`))
	})
	mux.HandleFunc("GET /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "1" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Product with id '` + r.PathValue("id") + `' not found"}`))
			return
		}
		w.Write([]byte(`{"id":1,"title":"Essence Mascara Lash Princess","price":9.99,"category":"beauty"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestListProducts(t *testing.T) {
	c := NewClient(newServer(t).URL+"/", time.Second)

	items, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Essence Mascara Lash Princess", items[0].Title)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("9.99")))
	require.NotNil(t, items[0].DiscountPercentage)
	assert.Nil(t, items[1].DiscountPercentage)
	assert.Equal(t, []string{"https://cdn/1a.png"}, items[0].Images)
}

func TestListCategoriesExtractsSlugs(t *testing.T) {
	c := NewClient(newServer(t).URL, time.Second)

	slugs, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"beauty", "fragrances"}, slugs)
}

func TestGetProduct(t *testing.T) {
	c := NewClient(newServer(t).URL, time.Second)

	item, err := c.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, item.ID)

	_, err = c.GetProduct(context.Background(), 999)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf), "got %v", err)
	assert.Equal(t, http.StatusNotFound, nf.Status)
}

func TestNonSuccessIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	c := NewClient(srv.URL, time.Second)

	_, err := c.ListProducts(context.Background())
	var ne *NetworkError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, http.StatusServiceUnavailable, ne.Status)
	assert.Contains(t, err.Error(), "API Error: 503")

	_, err = c.ListCategories(context.Background())
	require.True(t, errors.As(err, &ne))
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	c := NewClient(url, time.Second)

	_, err := c.ListProducts(context.Background())
	var ne *NetworkError
	require.True(t, errors.As(err, &ne))
	assert.Zero(t, ne.Status)

	_, err = c.GetProduct(context.Background(), 1)
	require.True(t, errors.As(err, &ne), "transport failure on detail stays a network error")
}

func TestMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": [`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).ListProducts(context.Background())
	var ne *NetworkError
	require.True(t, errors.As(err, &ne))
}
