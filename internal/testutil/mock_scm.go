package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockScm provides a testify mock for ports.Scm
type MockScm struct {
	mock.Mock
}

func (m *MockScm) IsRepository(dir string) bool {
	args := m.Called(dir)
	return args.Bool(0)
}

func (m *MockScm) CurrentRevision(dir string) (string, error) {
	args := m.Called(dir)
	return args.String(0), args.Error(1)
}

func (m *MockScm) CommitAll(dir, message string) (bool, error) {
	args := m.Called(dir, message)
	return args.Bool(0), args.Error(1)
}
