package domain_test

import (
	"math"
	"testing"

	"inhome/internal/domain"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestSummarize(t *testing.T) {
	products := []domain.Product{
		{QuantitySold: 10, Price: 5, Commission: 20},
		{QuantitySold: 0, Price: 3, Commission: 10}, // "bad" sold count coerced to zero at decode
	}

	st := domain.Summarize(products)

	if st.TotalProducts != 2 {
		t.Errorf("TotalProducts = %d; want 2", st.TotalProducts)
	}
	if st.TotalSales != 10 {
		t.Errorf("TotalSales = %d; want 10", st.TotalSales)
	}
	// 10 * 5 * 0.20 + 0
	if !almostEqual(st.TotalRevenue, 10.00, 0.001) {
		t.Errorf("TotalRevenue = %v; want 10.00", st.TotalRevenue)
	}
	if st.TotalAdSpend != 0 {
		t.Errorf("TotalAdSpend = %v; want 0", st.TotalAdSpend)
	}
}

func TestSummarize_AdSpendAndRounding(t *testing.T) {
	products := []domain.Product{
		{
			QuantitySold: 3, Price: 19.99, Commission: 7.5,
			AdSpending: []domain.AdSpendRecord{
				{Platform: "tiktok", Price: 12.5},
				{Platform: "meta", Price: 0}, // unparseable price decoded to zero
				{Platform: "snap", Price: 1.234},
			},
		},
	}

	st := domain.Summarize(products)

	// 3 * 19.99 * 0.075 = 4.49775 -> 4.5
	if !almostEqual(st.TotalRevenue, 4.5, 0.0001) {
		t.Errorf("TotalRevenue = %v; want 4.5", st.TotalRevenue)
	}
	// 12.5 + 0 + 1.234 = 13.734 -> 13.73
	if !almostEqual(st.TotalAdSpend, 13.73, 0.0001) {
		t.Errorf("TotalAdSpend = %v; want 13.73", st.TotalAdSpend)
	}
}

func TestSummarize_Empty(t *testing.T) {
	st := domain.Summarize(nil)
	if st != (domain.Stats{}) {
		t.Errorf("Summarize(nil) = %+v; want zero stats", st)
	}
}
