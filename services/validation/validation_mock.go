package validation

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockValidationService is a mock implementation of the services.ValidationService interface
type MockValidationService struct {
	mock.Mock
}

func (m *MockValidationService) ProjectExists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockValidationService) IssueExists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
