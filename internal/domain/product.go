package domain

import (
	"context"
	"io"
)

// Product represents a tracked affiliate product. Field names follow the
// upstream API's JSON contract.
type Product struct {
	ID            string          `json:"_id,omitempty"`
	Name          string          `json:"name"`
	StoreName     string          `json:"storename"`
	ProductLink   string          `json:"productLink"`
	AffiliateLink string          `json:"affiliateLink"`
	Description   string          `json:"description"`
	Price         Amount          `json:"price"`
	Quantity      Count           `json:"quantity"`
	QuantitySold  Count           `json:"quantitySold"`
	Commission    Amount          `json:"commission"`
	IsFrozen      bool            `json:"isFreezed"`
	CreatedAt     string          `json:"createdAt,omitempty"`
	UpdatedAt     string          `json:"updatedAt,omitempty"`
	AddedBy       *User           `json:"addedBy,omitempty"`
	AdSpending    []AdSpendRecord `json:"adSpendingHistory"`
}

// AdSpendRecord is one advertising spend entry. It belongs to exactly one
// product and has no independent lifecycle.
type AdSpendRecord struct {
	Platform string `json:"platform"`
	Price    Amount `json:"price"`
	Notes    string `json:"notes,omitempty"`
	Date     string `json:"date"`
}

// Revenue returns the commission revenue earned by this product:
// quantity sold times price times commission percentage.
func (p Product) Revenue() float64 {
	return float64(p.QuantitySold) * float64(p.Price) * float64(p.Commission) / 100
}

// AdSpendTotal sums the product's ad-spend entries.
func (p Product) AdSpendTotal() float64 {
	var total float64
	for _, ad := range p.AdSpending {
		total += float64(ad.Price)
	}
	return total
}

// Catalog defines the port for product operations on the upstream service.
// ExportSpreadsheet streams the server-side spreadsheet; the caller closes
// the reader.
type Catalog interface {
	ListProducts(ctx context.Context) ([]Product, error)
	AddProduct(ctx context.Context, p Product) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ExportSpreadsheet(ctx context.Context) (io.ReadCloser, string, error)
}
