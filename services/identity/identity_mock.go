package identity

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"
)

// MockIdentityService is a mock implementation of the services.IdentityService interface
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) ResolveSlackUser(ctx context.Context, slackUserID string) (mo.Option[string], error) {
	args := m.Called(ctx, slackUserID)
	return args.Get(0).(mo.Option[string]), args.Error(1)
}

func (m *MockIdentityService) ResolveByText(ctx context.Context, token string) (mo.Option[string], error) {
	args := m.Called(ctx, token)
	return args.Get(0).(mo.Option[string]), args.Error(1)
}
