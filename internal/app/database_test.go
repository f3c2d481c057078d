//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/doughdesk/storefront-service/config"
	"github.com/doughdesk/storefront-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCatalogSeeder struct {
	mock.Mock
}

func (m *mockCatalogSeeder) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCatalogSeeder) ReplaceAll(ctx context.Context, items []model.CatalogItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func TestSeedCatalog(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mockCatalogSeeder)
		wantError bool
	}{
		{
			name: "empty collection is seeded with the built-in catalog",
			setupMock: func(m *mockCatalogSeeder) {
				m.On("Count", mock.Anything).Return(int64(0), nil).Once()
				m.On("ReplaceAll", mock.Anything, model.DefaultCatalog()).Return(nil).Once()
			},
			wantError: false,
		},
		{
			name: "existing catalog is left alone",
			setupMock: func(m *mockCatalogSeeder) {
				m.On("Count", mock.Anything).Return(int64(6), nil).Once()
			},
			wantError: false,
		},
		{
			name: "count error",
			setupMock: func(m *mockCatalogSeeder) {
				m.On("Count", mock.Anything).Return(int64(0), errors.New("database error")).Once()
			},
			wantError: true,
		},
		{
			name: "replace error",
			setupMock: func(m *mockCatalogSeeder) {
				m.On("Count", mock.Anything).Return(int64(0), nil).Once()
				m.On("ReplaceAll", mock.Anything, mock.Anything).Return(errors.New("database error")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seeder := new(mockCatalogSeeder)
			seeder.Test(t)
			tt.setupMock(seeder)

			err := seedCatalog(seeder)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			seeder.AssertExpectations(t)
		})
	}
}

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})

	assert.Nil(t, components)
}
