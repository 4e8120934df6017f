package app

import (
	"context"
	"errors"
	"io"
	"strings"

	"inhome/internal/domain"
)

// ProductService encapsulates catalog use cases for the dashboard.
type ProductService struct {
	catalog domain.Catalog
	store   domain.SessionStore
}

// NewProductService creates a ProductService over the given catalog and
// session store.
func NewProductService(catalog domain.Catalog, store domain.SessionStore) *ProductService {
	return &ProductService{catalog: catalog, store: store}
}

// List fetches the full product list.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.catalog.ListProducts(credentialContext(ctx, s.store))
}

// Add validates the product locally and creates it upstream. Validation
// failures never reach the network.
func (s *ProductService) Add(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, errors.New("product name is required")
	}
	if strings.TrimSpace(p.StoreName) == "" {
		return nil, errors.New("store name is required")
	}
	if p.Price < 0 {
		return nil, errors.New("price must not be negative")
	}
	if p.Quantity < 0 {
		return nil, errors.New("quantity must not be negative")
	}
	if p.QuantitySold < 0 {
		return nil, errors.New("quantity sold must not be negative")
	}
	if p.Commission < 0 {
		return nil, errors.New("commission must not be negative")
	}
	for _, ad := range p.AdSpending {
		if strings.TrimSpace(ad.Platform) == "" {
			return nil, errors.New("ad spend platform is required")
		}
	}
	return s.catalog.AddProduct(credentialContext(ctx, s.store), p)
}

// Remove deletes a product by id.
func (s *ProductService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("product id is required")
	}
	return s.catalog.DeleteProduct(credentialContext(ctx, s.store), id)
}

// Stats fetches the product list and derives the dashboard totals from it.
func (s *ProductService) Stats(ctx context.Context) (domain.Stats, error) {
	products, err := s.List(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Summarize(products), nil
}

// ExportUpstream streams the server-side spreadsheet export. The caller
// closes the returned reader.
func (s *ProductService) ExportUpstream(ctx context.Context) (io.ReadCloser, string, error) {
	return s.catalog.ExportSpreadsheet(credentialContext(ctx, s.store))
}
