package domain

import "math"

// Stats are the derived dashboard totals for a product list.
type Stats struct {
	TotalProducts int     `json:"totalProducts"`
	TotalSales    int     `json:"totalSales"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalAdSpend  float64 `json:"totalAdSpending"`
}

// Summarize computes dashboard statistics from a raw product list.
// Malformed numeric fields were coerced to zero at decode time, so a
// partially bad list still yields totals. Revenue and ad spend are rounded
// to two decimal places.
func Summarize(products []Product) Stats {
	st := Stats{TotalProducts: len(products)}
	var revenue, adSpend float64
	for _, p := range products {
		st.TotalSales += int(p.QuantitySold)
		revenue += p.Revenue()
		adSpend += p.AdSpendTotal()
	}
	st.TotalRevenue = Round2(revenue)
	st.TotalAdSpend = Round2(adSpend)
	return st
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
