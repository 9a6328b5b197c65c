package services

import (
	"context"

	"github.com/samber/mo"
)

// IdentityService defines the interface for mapping chat users to Jira accounts.
// An empty Option means no unique match was found, which is a valid outcome,
// not an error; callers must surface a user-facing message instead of failing.
type IdentityService interface {
	ResolveSlackUser(ctx context.Context, slackUserID string) (mo.Option[string], error)
	ResolveByText(ctx context.Context, token string) (mo.Option[string], error)
}

// ValidationService defines the interface for existence checks against the tracker.
// Checks are always evaluated fresh; tracker state changes between requests.
type ValidationService interface {
	ProjectExists(ctx context.Context, key string) (bool, error)
	IssueExists(ctx context.Context, key string) (bool, error)
}
