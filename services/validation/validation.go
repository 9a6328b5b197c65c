package validation

import (
	"context"
	"fmt"
	"log"

	"jirabot/clients"
	"jirabot/core"
)

// ValidationService gates mutating commands on the current tracker state.
// Results are never cached; every check hits Jira fresh.
type ValidationService struct {
	jiraClient clients.JiraClient
}

func NewValidationService(jiraClient clients.JiraClient) *ValidationService {
	return &ValidationService{jiraClient: jiraClient}
}

// ProjectExists reports whether the key exactly matches a project visible
// to the service account. Keys are compared case-sensitively; the parser
// has already normalized them upper-case.
func (s *ValidationService) ProjectExists(ctx context.Context, key string) (bool, error) {
	keys, err := s.jiraClient.ListProjectKeys(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list project keys: %w", err)
	}

	for _, projectKey := range keys {
		if projectKey == key {
			return true, nil
		}
	}

	log.Printf("⚠️ Project key %s not found among %d projects", key, len(keys))
	return false, nil
}

// IssueExists reports whether an issue with the given key can be fetched.
// A "not found" from Jira yields false; any other failure propagates.
func (s *ValidationService) IssueExists(ctx context.Context, key string) (bool, error) {
	_, err := s.jiraClient.GetIssue(ctx, key)
	if err != nil {
		if core.IsNotFoundError(err) {
			log.Printf("⚠️ Issue %s not found", key)
			return false, nil
		}
		return false, fmt.Errorf("failed to check issue %s: %w", key, err)
	}
	return true, nil
}
