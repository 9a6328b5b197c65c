package identity

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"jirabot/clients"
)

// IdentityService resolves Slack users to Jira usernames by matching
// the Slack profile email against the Jira user directory
type IdentityService struct {
	slackClient clients.SlackClient
	jiraClient  clients.JiraClient
}

func NewIdentityService(slackClient clients.SlackClient, jiraClient clients.JiraClient) *IdentityService {
	return &IdentityService{
		slackClient: slackClient,
		jiraClient:  jiraClient,
	}
}

// ResolveSlackUser maps a Slack user ID to a Jira username via the user's
// profile email. Returns an empty Option when the profile has no email or
// the email does not match exactly one Jira account.
func (s *IdentityService) ResolveSlackUser(ctx context.Context, slackUserID string) (mo.Option[string], error) {
	log.Printf("📋 Starting to resolve Jira identity for Slack user: %s", slackUserID)

	if slackUserID == "" {
		return mo.None[string](), fmt.Errorf("slack user ID cannot be empty")
	}

	user, err := s.slackClient.GetUserInfoContext(ctx, slackUserID)
	if err != nil {
		return mo.None[string](), fmt.Errorf("failed to get slack user info: %w", err)
	}

	if user.Profile.Email == "" {
		log.Printf("⚠️ Slack user %s has no profile email - cannot resolve Jira identity", slackUserID)
		return mo.None[string](), nil
	}

	return s.ResolveByText(ctx, user.Profile.Email)
}

// ResolveByText searches the Jira user directory with a literal token and
// applies the single-match rule: exactly one hit resolves, anything else
// is an empty Option.
func (s *IdentityService) ResolveByText(ctx context.Context, token string) (mo.Option[string], error) {
	users, err := s.jiraClient.SearchUsers(ctx, token)
	if err != nil {
		return mo.None[string](), fmt.Errorf("failed to search jira users: %w", err)
	}

	if len(users) != 1 {
		log.Printf("⚠️ Jira user search for %q returned %d matches - not resolving", token, len(users))
		return mo.None[string](), nil
	}

	log.Printf("📋 Resolved %q to Jira user: %s", token, users[0].Name)
	return mo.Some(users[0].Name), nil
}
