package validation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	jiraclient "jirabot/clients/jira"
	"jirabot/core"
	"jirabot/models"
)

func setupValidationService(t *testing.T) (*ValidationService, *jiraclient.MockJiraClient) {
	t.Helper()
	mockJira := new(jiraclient.MockJiraClient)
	return NewValidationService(mockJira), mockJira
}

func TestProjectExists(t *testing.T) {
	t.Run("Success_ExactMatch", func(t *testing.T) {
		// Setup
		service, mockJira := setupValidationService(t)

		mockJira.On("ListProjectKeys", mock.Anything).
			Return([]string{"PROJ1", "PROJ2"}, nil)

		// Execute
		exists, err := service.ProjectExists(context.Background(), "PROJ1")

		// Assert
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Success_CaseSensitiveMismatch", func(t *testing.T) {
		// Setup
		service, mockJira := setupValidationService(t)

		mockJira.On("ListProjectKeys", mock.Anything).
			Return([]string{"proj1"}, nil)

		// Execute
		exists, err := service.ProjectExists(context.Background(), "PROJ1")

		// Assert
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Success_EmptyProjectList", func(t *testing.T) {
		// Setup
		service, mockJira := setupValidationService(t)

		mockJira.On("ListProjectKeys", mock.Anything).
			Return([]string{}, nil)

		// Execute
		exists, err := service.ProjectExists(context.Background(), "PROJ1")

		// Assert
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Error_ListFails", func(t *testing.T) {
		// Setup
		service, mockJira := setupValidationService(t)

		mockJira.On("ListProjectKeys", mock.Anything).
			Return(nil, fmt.Errorf("jira unavailable"))

		// Execute
		_, err := service.ProjectExists(context.Background(), "PROJ1")

		// Assert
		require.Error(t, err)
	})
}

func TestIssueExists(t *testing.T) {
	t.Run("Success_IssueFound", func(t *testing.T) {
		// Setup
		service, mockJira := setupValidationService(t)

		mockJira.On("GetIssue", mock.Anything, "TICK-5").
			Return(&models.Issue{Key: "TICK-5"}, nil)

		// Execute
		exists, err := service.IssueExists(context.Background(), "TICK-5")

		// Assert
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Success_IssueNotFound", func(t *testing.T) {
		// Setup
		service, mockJira := setupValidationService(t)

		mockJira.On("GetIssue", mock.Anything, "TICK-404").
			Return(nil, fmt.Errorf("issue TICK-404: %w", core.ErrNotFound))

		// Execute
		exists, err := service.IssueExists(context.Background(), "TICK-404")

		// Assert
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Error_TransportFailurePropagates", func(t *testing.T) {
		// Setup
		service, mockJira := setupValidationService(t)

		mockJira.On("GetIssue", mock.Anything, "TICK-5").
			Return(nil, fmt.Errorf("rate limited"))

		// Execute
		_, err := service.IssueExists(context.Background(), "TICK-5")

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limited")
	})
}
