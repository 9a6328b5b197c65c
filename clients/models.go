package clients

// SlackUser represents a Slack user with the profile fields we consume
type SlackUser struct {
	ID      string
	Name    string
	Profile SlackUserProfile
}

// SlackUserProfile represents a Slack user's profile information
type SlackUserProfile struct {
	Email       string
	DisplayName string
	RealName    string
}

// JiraUser represents a Jira account returned by a user directory search
type JiraUser struct {
	Name         string
	DisplayName  string
	EmailAddress string
}

// JiraTransition is one workflow transition available on an issue
type JiraTransition struct {
	ID   string
	Name string
}

// CreateIssueRequest carries the fields for creating a new Jira issue
type CreateIssueRequest struct {
	ProjectKey string
	Summary    string
	IssueType  string
	Reporter   string
	Assignee   string
}
