package response

import "mototrackr/internal/domain/entities"

type SparePartResponse struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Price             int64  `json:"price"`
	QuantityInStock   int64  `json:"quantity_in_stock"`
	SKU               string `json:"sku"`
	Category          string `json:"category"`
	MinimumStockLevel int64  `json:"minimum_stock_level"`
	IsActive          bool   `json:"is_active"`
	LowStock          bool   `json:"low_stock"`
}

func FromSparePart(p entities.SparePart) SparePartResponse {
	return SparePartResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		QuantityInStock:   p.QuantityInStock,
		SKU:               p.SKU,
		Category:          p.Category,
		MinimumStockLevel: p.MinimumStockLevel,
		IsActive:          p.IsActive,
		LowStock:          p.QuantityInStock <= p.MinimumStockLevel,
	}
}

func FromSpareParts(parts []entities.SparePart) []SparePartResponse {
	out := make([]SparePartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, FromSparePart(p))
	}
	return out
}
