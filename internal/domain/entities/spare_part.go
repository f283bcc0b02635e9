package entities

// SparePart is the typed view of one inventory record from the remote
// spare-parts service. The remote payload is validated at the client
// boundary; unknown or missing numeric fields come through as zero rather
// than as untyped values.

type SparePart struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Price             int64  `json:"price"`
	QuantityInStock   int64  `json:"quantity_in_stock"`
	SKU               string `json:"sku"`
	Category          string `json:"category"`
	MinimumStockLevel int64  `json:"minimum_stock_level"`
	IsActive          bool   `json:"is_active"`
}

// SparePartQuery narrows a remote inventory listing.
type SparePartQuery struct {
	Search       string
	Category     string
	LowStockOnly bool
	Skip         int
	Limit        int
}
