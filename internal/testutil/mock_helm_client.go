package testutil

import (
	"mb/internal/ports"

	"github.com/stretchr/testify/mock"
)

// MockHelmClient provides a testify mock for ports.HelmClient
type MockHelmClient struct {
	mock.Mock
}

func (m *MockHelmClient) Template(opts ports.TemplateOptions) ([]byte, error) {
	args := m.Called(opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockHelmClient) TemplateCommand(opts ports.TemplateOptions) string {
	args := m.Called(opts)
	return args.String(0)
}

func (m *MockHelmClient) Pull(opts ports.PullOptions) (string, error) {
	args := m.Called(opts)
	return args.String(0), args.Error(1)
}

func (m *MockHelmClient) PullCommand(opts ports.PullOptions) string {
	args := m.Called(opts)
	return args.String(0)
}

func (m *MockHelmClient) Available() bool {
	args := m.Called()
	return args.Bool(0)
}
