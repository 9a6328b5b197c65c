package jira

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jirabot/clients"
	"jirabot/models"
)

// MockJiraClient is a mock implementation of the clients.JiraClient interface
type MockJiraClient struct {
	mock.Mock
}

func (m *MockJiraClient) ListProjectKeys(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockJiraClient) GetIssue(ctx context.Context, key string) (*models.Issue, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockJiraClient) SearchUsers(ctx context.Context, query string) ([]clients.JiraUser, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clients.JiraUser), args.Error(1)
}

func (m *MockJiraClient) CreateIssue(ctx context.Context, req clients.CreateIssueRequest) (*models.Issue, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockJiraClient) ListTransitions(ctx context.Context, issueKey string) ([]clients.JiraTransition, error) {
	args := m.Called(ctx, issueKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clients.JiraTransition), args.Error(1)
}

func (m *MockJiraClient) ApplyTransition(ctx context.Context, issueKey, transitionID string) error {
	args := m.Called(ctx, issueKey, transitionID)
	return args.Error(0)
}

func (m *MockJiraClient) SetAssignee(ctx context.Context, issueKey, username string) error {
	args := m.Called(ctx, issueKey, username)
	return args.Error(0)
}

func (m *MockJiraClient) SearchIssues(ctx context.Context, jql string) ([]models.Issue, error) {
	args := m.Called(ctx, jql)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Issue), args.Error(1)
}
