package jira

import (
	"context"
	"fmt"
	"net/http"

	jira "github.com/andygrunwald/go-jira"

	"jirabot/clients"
	"jirabot/core"
	"jirabot/models"
)

// JiraClient implements the clients.JiraClient interface using the andygrunwald/go-jira SDK
type JiraClient struct {
	client *jira.Client
}

// NewJiraClient creates a new Jira client authenticated with basic auth
func NewJiraClient(baseURL, username, password string) (clients.JiraClient, error) {
	tp := jira.BasicAuthTransport{
		Username: username,
		Password: password,
	}
	client, err := jira.NewClient(tp.Client(), baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create jira client: %w", err)
	}
	return &JiraClient{client: client}, nil
}

// ListProjectKeys returns the keys of all projects visible to the service account
func (c *JiraClient) ListProjectKeys(ctx context.Context) ([]string, error) {
	projects, _, err := c.client.Project.GetListWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	keys := make([]string, 0, len(*projects))
	for _, project := range *projects {
		keys = append(keys, project.Key)
	}
	return keys, nil
}

// GetIssue fetches a single issue by key. A missing key yields an error
// matching core.IsNotFoundError; any other failure is a transport error.
func (c *JiraClient) GetIssue(ctx context.Context, key string) (*models.Issue, error) {
	issue, resp, err := c.client.Issue.GetWithContext(ctx, key, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("issue %s: %w", key, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get issue %s: %w", key, err)
	}
	return mapIssue(issue), nil
}

// SearchUsers searches the Jira user directory with the given query string
func (c *JiraClient) SearchUsers(ctx context.Context, query string) ([]clients.JiraUser, error) {
	users, _, err := c.client.User.FindWithContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	result := make([]clients.JiraUser, 0, len(users))
	for _, user := range users {
		result = append(result, clients.JiraUser{
			Name:         user.Name,
			DisplayName:  user.DisplayName,
			EmailAddress: user.EmailAddress,
		})
	}
	return result, nil
}

// CreateIssue creates a new issue and returns it fully populated.
// The Jira create response only carries the new key, so the issue is
// fetched back before returning.
func (c *JiraClient) CreateIssue(ctx context.Context, req clients.CreateIssueRequest) (*models.Issue, error) {
	issue := &jira.Issue{
		Fields: &jira.IssueFields{
			Project: jira.Project{
				Key: req.ProjectKey,
			},
			Summary: req.Summary,
			Type: jira.IssueType{
				Name: req.IssueType,
			},
			Reporter: &jira.User{
				Name: req.Reporter,
			},
			Assignee: &jira.User{
				Name: req.Assignee,
			},
		},
	}

	created, _, err := c.client.Issue.CreateWithContext(ctx, issue)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue in project %s: %w", req.ProjectKey, err)
	}

	return c.GetIssue(ctx, created.Key)
}

// ListTransitions returns the workflow transitions currently available on an issue
func (c *JiraClient) ListTransitions(ctx context.Context, issueKey string) ([]clients.JiraTransition, error) {
	transitions, _, err := c.client.Issue.GetTransitionsWithContext(ctx, issueKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list transitions for issue %s: %w", issueKey, err)
	}

	result := make([]clients.JiraTransition, 0, len(transitions))
	for _, transition := range transitions {
		result = append(result, clients.JiraTransition{
			ID:   transition.ID,
			Name: transition.Name,
		})
	}
	return result, nil
}

// ApplyTransition applies a workflow transition to an issue
func (c *JiraClient) ApplyTransition(ctx context.Context, issueKey, transitionID string) error {
	if _, err := c.client.Issue.DoTransitionWithContext(ctx, issueKey, transitionID); err != nil {
		return fmt.Errorf("failed to apply transition %s to issue %s: %w", transitionID, issueKey, err)
	}
	return nil
}

// SetAssignee updates the assignee of an issue
func (c *JiraClient) SetAssignee(ctx context.Context, issueKey, username string) error {
	assignee := &jira.User{Name: username}
	if _, err := c.client.Issue.UpdateAssigneeWithContext(ctx, issueKey, assignee); err != nil {
		return fmt.Errorf("failed to assign issue %s to %s: %w", issueKey, username, err)
	}
	return nil
}

// SearchIssues runs a JQL query and returns the matching issues
func (c *JiraClient) SearchIssues(ctx context.Context, jql string) ([]models.Issue, error) {
	issues, _, err := c.client.Issue.SearchWithContext(ctx, jql, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to search issues: %w", err)
	}

	result := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		result = append(result, *mapIssue(&issue))
	}
	return result, nil
}

// mapIssue converts an SDK issue into our issue model, tolerating the
// optional fields Jira omits (unassigned issues, missing priority)
func mapIssue(issue *jira.Issue) *models.Issue {
	mapped := &models.Issue{
		Key: issue.Key,
	}
	if issue.Fields == nil {
		return mapped
	}

	mapped.Summary = issue.Fields.Summary
	if issue.Fields.Status != nil {
		mapped.StatusName = issue.Fields.Status.Name
	}
	if issue.Fields.Assignee != nil {
		mapped.AssigneeName = issue.Fields.Assignee.Name
	}
	if issue.Fields.Priority != nil {
		mapped.PriorityName = issue.Fields.Priority.Name
	}
	return mapped
}
