package remote

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"inhome/internal/domain"
)

// ListProducts fetches the full product list.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out struct {
		Products []domain.Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/getProducts", nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// AddProduct creates a product. A nil product with a nil error means the
// upstream acknowledged the write without echoing the record.
func (c *Client) AddProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	var out struct {
		Product *domain.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodPost, "/products/addProduct", p, &out); err != nil {
		return nil, err
	}
	return out.Product, nil
}

// DeleteProduct removes a product by id.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/deleteProduct/"+url.PathEscape(id), nil, nil)
}

// ExportSpreadsheet streams the upstream's own spreadsheet export. The
// caller must close the returned reader.
func (c *Client) ExportSpreadsheet(ctx context.Context) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products/exportProductsToExcel", nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer func() { _ = resp.Body.Close() }()
		return nil, "", decodeError(resp)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}
