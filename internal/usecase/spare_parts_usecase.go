package usecase

import (
	"context"
	"log"
	"mototrackr/internal/domain/entities"
	"mototrackr/internal/usecase/interfaces"
)

// ISparePartsUseCase serves the mechanic spare-parts lookup.

type ISparePartsUseCase interface {
	ListParts(ctx context.Context, query entities.SparePartQuery) ([]entities.SparePart, error)
}

// SparePartsUseCase wraps the remote inventory client. The remote service
// is optional infrastructure: a missing client or a failing call degrades
// to an empty result set instead of an error, so the shop floor keeps
// working without inventory.

type SparePartsUseCase struct {
	client interfaces.ISparePartsClient
}

var _ ISparePartsUseCase = (*SparePartsUseCase)(nil)

func NewSparePartsUseCase(client interfaces.ISparePartsClient) *SparePartsUseCase {
	return &SparePartsUseCase{client: client}
}

func (u *SparePartsUseCase) ListParts(ctx context.Context, query entities.SparePartQuery) ([]entities.SparePart, error) {
	if u.client == nil {
		log.Printf("[parts][usecase] inventory client not configured")
		return []entities.SparePart{}, nil
	}

	parts, err := u.client.ListParts(ctx, query)
	if err != nil {
		log.Printf("[parts][usecase] inventory lookup failed err=%v", err)
		return []entities.SparePart{}, nil
	}
	if parts == nil {
		parts = []entities.SparePart{}
	}
	return parts, nil
}
