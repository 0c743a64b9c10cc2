package service_test

import (
	"testing"

	"go-pos-backend/internal/service"
)

func TestTaxAmountRoundsHalfUp(t *testing.T) {
	cases := []struct {
		total int64
		tax   int64
	}{
		{0, 0},
		{1, 0},    // 0.1 + 0.5 = 0.6 -> 0
		{4, 0},    // 0.9 -> 0
		{5, 1},    // exactly 1.0
		{14, 1},   // 1.9 -> 1
		{15, 2},   // 2.0
		{100, 10},
		{999, 100},  // 99.9 + 0.5 = 100.4 -> 100
		{1250, 125},
	}

	for _, c := range cases {
		if got := service.TaxAmount(c.total); got != c.tax {
			t.Errorf("TaxAmount(%d) = %d, want %d", c.total, got, c.tax)
		}
	}
}

func TestTotalWithTax(t *testing.T) {
	if got := service.TotalWithTax(1250); got != 1375 {
		t.Errorf("TotalWithTax(1250) = %d, want 1375", got)
	}
}
