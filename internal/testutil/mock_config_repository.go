package testutil

import (
	"mb/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockConfigRepository provides a testify mock for core.ConfigRepository
type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) LoadApps(configDir string) ([]domain.App, error) {
	args := m.Called(configDir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.App), args.Error(1)
}
