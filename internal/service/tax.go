package service

// TaxRate is the single fixed consumption tax rate applied to every
// purchase. There are no per-product tax classes.
const TaxRate = 0.10

// TaxAmount returns the tax for a tax-exclusive total, rounding half up:
// floor(total*0.10 + 0.5), kept in integer arithmetic. Totals here are
// always >= 0 (built from validated positive quantities and non-negative
// master prices); behavior for negative input is intentionally undefined.
func TaxAmount(totalWithoutTax int64) int64 {
	return (totalWithoutTax + 5) / 10
}

// TotalWithTax returns the tax-inclusive total.
func TotalWithTax(totalWithoutTax int64) int64 {
	return totalWithoutTax + TaxAmount(totalWithoutTax)
}
