// Package export flattens product records into tabular rows and writes the
// downloadable spreadsheet.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"inhome/internal/domain"
)

// Placeholder stands in for absent creators and unparseable dates.
const Placeholder = "unspecified"

// NoAdSpend stands in for an empty ad-spend history.
const NoAdSpend = "none"

const sheetName = "Products"

// Row is one flat export record.
type Row struct {
	Name          string
	StoreName     string
	ProductLink   string
	AffiliateLink string
	Description   string
	Price         float64
	Quantity      int
	QuantitySold  int
	Commission    float64
	AdSpendTotal  float64
	AdSpendDetail string
	AddedBy       string
	Status        string
	CreatedAt     string
	UpdatedAt     string
}

var headers = []string{
	"Name", "Store", "Product Link", "Affiliate Link", "Description",
	"Price", "Quantity", "Quantity Sold", "Commission (%)",
	"Total Ad Spend", "Ad Spend History", "Added By", "Status",
	"Created", "Updated",
}

// RowFor flattens a product into its export row.
func RowFor(p domain.Product) Row {
	status := "active"
	if p.IsFrozen {
		status = "frozen"
	}
	return Row{
		Name:          p.Name,
		StoreName:     p.StoreName,
		ProductLink:   p.ProductLink,
		AffiliateLink: p.AffiliateLink,
		Description:   p.Description,
		Price:         float64(p.Price),
		Quantity:      int(p.Quantity),
		QuantitySold:  int(p.QuantitySold),
		Commission:    float64(p.Commission),
		AdSpendTotal:  domain.Round2(p.AdSpendTotal()),
		AdSpendDetail: adSpendDetail(p.AdSpending),
		AddedBy:       creatorSummary(p.AddedBy),
		Status:        status,
		CreatedAt:     formatDate(p.CreatedAt),
		UpdatedAt:     formatDate(p.UpdatedAt),
	}
}

// Rows flattens a product list in order.
func Rows(products []domain.Product) []Row {
	rows := make([]Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, RowFor(p))
	}
	return rows
}

func adSpendDetail(records []domain.AdSpendRecord) string {
	if len(records) == 0 {
		return NoAdSpend
	}
	parts := make([]string, 0, len(records))
	for _, ad := range records {
		part := fmt.Sprintf("%s: %s (%s)", ad.Platform, formatCurrency(float64(ad.Price)), formatDate(ad.Date))
		if ad.Notes != "" {
			part += " - " + ad.Notes
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}

func creatorSummary(u *domain.User) string {
	if u == nil {
		return Placeholder
	}
	return fmt.Sprintf("%s (%s) - %s", u.Name, u.Email, u.Phone)
}

func formatCurrency(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// formatDate renders an upstream timestamp as a calendar date. Anything
// that does not parse renders as the placeholder instead of failing the
// whole export.
func formatDate(s string) string {
	if s == "" {
		return Placeholder
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return Placeholder
}

// Write streams the workbook for the given products to w.
func Write(w io.Writer, products []domain.Product) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for i, row := range Rows(products) {
		values := []any{
			row.Name, row.StoreName, row.ProductLink, row.AffiliateLink,
			row.Description, row.Price, row.Quantity, row.QuantitySold,
			row.Commission, row.AdSpendTotal, row.AdSpendDetail,
			row.AddedBy, row.Status, row.CreatedAt, row.UpdatedAt,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "O", 22); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}

// Filename returns the attachment name for an export taken at t.
func Filename(t time.Time) string {
	return "products_export_" + t.Format("2006-01-02") + ".xlsx"
}
