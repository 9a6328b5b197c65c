package slack

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jirabot/clients"
	"jirabot/models"
)

// MockSlackClient is a mock implementation of the clients.SlackClient interface
type MockSlackClient struct {
	mock.Mock
}

func (m *MockSlackClient) GetUserInfoContext(ctx context.Context, userID string) (*clients.SlackUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.SlackUser), args.Error(1)
}

func (m *MockSlackClient) PostNotification(ctx context.Context, notification models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}
