package interfaces

import (
	"context"
	"mototrackr/internal/domain/entities"
)

// ISparePartsClient abstracts the remote spare-parts inventory service.
// The service is optional: callers must tolerate absence or network failure
// by degrading to an empty result set.

type ISparePartsClient interface {
	ListParts(ctx context.Context, query entities.SparePartQuery) ([]entities.SparePart, error)
}
