package usecase

import (
	"context"
	"errors"
	"testing"

	"mototrackr/internal/domain/entities"
	mock_interfaces "mototrackr/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSparePartsUseCase_ListParts(t *testing.T) {
	t.Run("no client degrades to empty set", func(t *testing.T) {
		uc := NewSparePartsUseCase(nil)
		parts, err := uc.ListParts(context.Background(), entities.SparePartQuery{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parts == nil || len(parts) != 0 {
			t.Fatalf("expected empty non-nil set, got %v", parts)
		}
	})

	t.Run("remote failure degrades to empty set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockISparePartsClient(ctrl)
		uc := NewSparePartsUseCase(client)

		client.EXPECT().ListParts(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		parts, err := uc.ListParts(context.Background(), entities.SparePartQuery{Search: "brake"})
		if err != nil {
			t.Fatalf("expected degraded success, got %v", err)
		}
		if len(parts) != 0 {
			t.Fatalf("expected empty set, got %v", parts)
		}
	})

	t.Run("passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockISparePartsClient(ctrl)
		uc := NewSparePartsUseCase(client)

		query := entities.SparePartQuery{Search: "chain", Limit: 5}
		client.EXPECT().ListParts(gomock.Any(), query).Return([]entities.SparePart{{ID: 7, Name: "Chain Kit"}}, nil)

		parts, err := uc.ListParts(context.Background(), query)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(parts) != 1 || parts[0].Name != "Chain Kit" {
			t.Fatalf("unexpected parts: %+v", parts)
		}
	})
}
