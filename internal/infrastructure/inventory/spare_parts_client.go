package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mototrackr/internal/domain/entities"
	"mototrackr/internal/usecase/interfaces"
)

// SparePartsClient talks to the remote spare-parts inventory service
// (GET {base}/api/v1/spare_parts/ with filter query params).
//
// The remote payload is dynamic; this client is the boundary that turns it
// into the typed entities.SparePart schema. Missing or non-numeric fields
// decode to zero values and never travel inward untyped. Callers treat any
// transport error as "no inventory available".

type SparePartsClient struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.ISparePartsClient = (*SparePartsClient)(nil)

func NewSparePartsClient(baseURL string) *SparePartsClient {
	return &SparePartsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type sparePartRecord struct {
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

type listResponse struct {
	Items []sparePartRecord `json:"items"`
	Total int64             `json:"total"`
}

func (c *SparePartsClient) ListParts(ctx context.Context, query entities.SparePartQuery) ([]entities.SparePart, error) {
	params := url.Values{}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.LowStockOnly {
		params.Set("low_stock_only", "true")
	}
	if query.Skip > 0 {
		params.Set("skip", strconv.Itoa(query.Skip))
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	endpoint := c.baseURL + "/api/v1/spare_parts/"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var lr listResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("failed to decode inventory response: %w", err)
	}

	parts := make([]entities.SparePart, 0, len(lr.Items))
	for _, rec := range lr.Items {
		parts = append(parts, entities.SparePart{
			ID:                rec.ID,
			Name:              rec.Name,
			Description:       rec.Description,
			Price:             rec.Price,
			QuantityInStock:   rec.QuantityInStock,
			SKU:               rec.SKU,
			Category:          rec.Category,
			MinimumStockLevel: rec.MinimumStockLevel,
			IsActive:          rec.IsActive,
		})
	}
	return parts, nil
}
