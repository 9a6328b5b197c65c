package clients

import (
	"context"

	"jirabot/models"
)

// SlackClient defines the interface for Slack operations used by the command pipeline
type SlackClient interface {
	GetUserInfoContext(ctx context.Context, userID string) (*SlackUser, error)
	PostNotification(ctx context.Context, notification models.Notification) error
}

// JiraClient defines the interface for Jira operations used by the command pipeline.
// GetIssue returns an error matching core.IsNotFoundError when the key does not exist.
type JiraClient interface {
	ListProjectKeys(ctx context.Context) ([]string, error)
	GetIssue(ctx context.Context, key string) (*models.Issue, error)
	SearchUsers(ctx context.Context, query string) ([]JiraUser, error)
	CreateIssue(ctx context.Context, req CreateIssueRequest) (*models.Issue, error)
	ListTransitions(ctx context.Context, issueKey string) ([]JiraTransition, error)
	ApplyTransition(ctx context.Context, issueKey, transitionID string) error
	SetAssignee(ctx context.Context, issueKey, username string) error
	SearchIssues(ctx context.Context, jql string) ([]models.Issue, error)
}
