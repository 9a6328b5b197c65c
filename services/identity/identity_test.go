package identity

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jirabot/clients"
	jiraclient "jirabot/clients/jira"
	slackclient "jirabot/clients/slack"
)

func setupIdentityService(t *testing.T) (*IdentityService, *slackclient.MockSlackClient, *jiraclient.MockJiraClient) {
	t.Helper()
	mockSlack := new(slackclient.MockSlackClient)
	mockJira := new(jiraclient.MockJiraClient)
	return NewIdentityService(mockSlack, mockJira), mockSlack, mockJira
}

func TestResolveSlackUser(t *testing.T) {
	t.Run("Success_SingleMatch", func(t *testing.T) {
		// Setup
		service, mockSlack, mockJira := setupIdentityService(t)

		mockSlack.On("GetUserInfoContext", mock.Anything, "U123456").
			Return(&clients.SlackUser{
				ID:      "U123456",
				Profile: clients.SlackUserProfile{Email: "alice@example.com"},
			}, nil)
		mockJira.On("SearchUsers", mock.Anything, "alice@example.com").
			Return([]clients.JiraUser{{Name: "alice"}}, nil)

		// Execute
		result, err := service.ResolveSlackUser(context.Background(), "U123456")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "alice", result.MustGet())
		mockSlack.AssertExpectations(t)
		mockJira.AssertExpectations(t)
	})

	t.Run("Success_NoEmailInProfile", func(t *testing.T) {
		// Setup
		service, mockSlack, mockJira := setupIdentityService(t)

		mockSlack.On("GetUserInfoContext", mock.Anything, "U123456").
			Return(&clients.SlackUser{ID: "U123456"}, nil)

		// Execute
		result, err := service.ResolveSlackUser(context.Background(), "U123456")

		// Assert
		require.NoError(t, err)
		assert.False(t, result.IsPresent())
		mockJira.AssertNotCalled(t, "SearchUsers", mock.Anything, mock.Anything)
	})

	t.Run("Success_MultipleMatchesNotResolved", func(t *testing.T) {
		// Setup
		service, mockSlack, mockJira := setupIdentityService(t)

		mockSlack.On("GetUserInfoContext", mock.Anything, "U123456").
			Return(&clients.SlackUser{
				Profile: clients.SlackUserProfile{Email: "bob@example.com"},
			}, nil)
		mockJira.On("SearchUsers", mock.Anything, "bob@example.com").
			Return([]clients.JiraUser{{Name: "bob1"}, {Name: "bob2"}}, nil)

		// Execute
		result, err := service.ResolveSlackUser(context.Background(), "U123456")

		// Assert
		require.NoError(t, err)
		assert.False(t, result.IsPresent())
	})

	t.Run("Error_EmptyUserID", func(t *testing.T) {
		// Setup
		service, _, _ := setupIdentityService(t)

		// Execute
		_, err := service.ResolveSlackUser(context.Background(), "")

		// Assert
		require.Error(t, err)
	})

	t.Run("Error_SlackLookupFails", func(t *testing.T) {
		// Setup
		service, mockSlack, _ := setupIdentityService(t)

		mockSlack.On("GetUserInfoContext", mock.Anything, "U123456").
			Return(nil, fmt.Errorf("slack is down"))

		// Execute
		_, err := service.ResolveSlackUser(context.Background(), "U123456")

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get slack user info")
	})
}

func TestResolveByText(t *testing.T) {
	t.Run("Success_SingleMatch", func(t *testing.T) {
		// Setup
		service, _, mockJira := setupIdentityService(t)

		mockJira.On("SearchUsers", mock.Anything, "bob").
			Return([]clients.JiraUser{{Name: "bob"}}, nil)

		// Execute
		result, err := service.ResolveByText(context.Background(), "bob")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "bob", result.MustGet())
	})

	t.Run("Success_NoMatch", func(t *testing.T) {
		// Setup
		service, _, mockJira := setupIdentityService(t)

		mockJira.On("SearchUsers", mock.Anything, "ghost").
			Return([]clients.JiraUser{}, nil)

		// Execute
		result, err := service.ResolveByText(context.Background(), "ghost")

		// Assert
		require.NoError(t, err)
		assert.False(t, result.IsPresent())
	})

	t.Run("Error_SearchFails", func(t *testing.T) {
		// Setup
		service, _, mockJira := setupIdentityService(t)

		mockJira.On("SearchUsers", mock.Anything, "bob").
			Return(nil, fmt.Errorf("jira unavailable"))

		// Execute
		_, err := service.ResolveByText(context.Background(), "bob")

		// Assert
		require.Error(t, err)
	})
}
