package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CatalogItem struct {
	ID                 int             `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage *float64        `json:"discountPercentage,omitempty"`
	Rating             float64         `json:"rating"`
	Stock              int             `json:"stock"`
	Brand              string          `json:"brand,omitempty"`
	Category           string          `json:"category"`
	Thumbnail          string          `json:"thumbnail"`
	Images             []string        `json:"images,omitempty"`
}

// CatalogPage is the envelope returned by GET /products.
type CatalogPage struct {
	Products []CatalogItem `json:"products"`
	Total    int           `json:"total"`
	Skip     int           `json:"skip"`
	Limit    int           `json:"limit"`
}

type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type InventoryRecord struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// Value is the stock value of the record (price times quantity).
func (r InventoryRecord) Value() decimal.Decimal {
	return r.Price.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty"`
}

// Activity types.
const (
	ActivityProduct = "product"
	ActivityUser    = "user"
	ActivityStock   = "stock"
)

type Activity struct {
	ID        string    `json:"id" db:"id"`
	Timestamp time.Time `json:"timestamp" db:"ts"`
	Action    string    `json:"action" db:"action"`
	Type      string    `json:"type" db:"type"`
	Details   string    `json:"details" db:"details"`
}
