package service

import (
	"context"
	"testing"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/SeaBoo73/definitiveversion-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResourceService_Create(t *testing.T) {
	repo := mocks.NewMockResourceRepo(t)
	svc := NewResourceService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	resource, err := svc.Create(context.Background(), domain.CreateResourceInput{
		OwnerID:         "owner1",
		Name:            "Sunseeker 42",
		DailyPriceCents: 20000,
		MaxAdvanceDays:  365,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resource.ID)
	assert.Equal(t, "EUR", resource.Currency, "currency defaults to EUR")
	assert.Equal(t, int64(20000), resource.DailyPriceCents)
}

func TestResourceService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateResourceInput
	}{
		{"missing name", domain.CreateResourceInput{DailyPriceCents: 20000}},
		{"zero price", domain.CreateResourceInput{Name: "Boat", DailyPriceCents: 0}},
		{"negative advance window", domain.CreateResourceInput{Name: "Boat", DailyPriceCents: 20000, MaxAdvanceDays: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewResourceService(mocks.NewMockResourceRepo(t))

			_, err := svc.Create(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
