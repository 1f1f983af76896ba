package types

import "github.com/shopspring/decimal"

// Pricing is the price breakdown for a build. Parts, assembly fee and
// subtotal are whole rupees; gst and total are exact decimals with no
// intermediate rounding. Field names are read literally by storefront
// clients — do not rename.
type Pricing struct {
	PartsTotal  int             `json:"partsTotal"`
	AssemblyFee int             `json:"assemblyFee"`
	Subtotal    int             `json:"subtotal"`
	GST         decimal.Decimal `json:"gst"`
	Total       decimal.Decimal `json:"total"`
}
