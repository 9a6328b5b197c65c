package slack

import (
	"context"

	"github.com/slack-go/slack"

	"jirabot/clients"
	"jirabot/models"
)

const (
	botUsername = "Jira Bot"
	botIconURL  = "https://globus.atlassian.net/images/64jira.png"
)

// SlackClient implements the clients.SlackClient interface using the slack-go/slack SDK
type SlackClient struct {
	*slack.Client
}

// NewSlackClient creates a new Slack client with the provided auth token
func NewSlackClient(authToken string) clients.SlackClient {
	return &SlackClient{
		Client: slack.New(authToken),
	}
}

// GetUserInfoContext gets information about a Slack user
func (c *SlackClient) GetUserInfoContext(ctx context.Context, userID string) (*clients.SlackUser, error) {
	user, err := c.Client.GetUserInfoContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &clients.SlackUser{
		ID:   user.ID,
		Name: user.Name,
		Profile: clients.SlackUserProfile{
			Email:       user.Profile.Email,
			DisplayName: user.Profile.DisplayName,
			RealName:    user.Profile.RealName,
		},
	}, nil
}

// PostNotification sends a notification to a Slack channel as a colored attachment
func (c *SlackClient) PostNotification(ctx context.Context, notification models.Notification) error {
	attachment := slack.Attachment{
		Color:      string(notification.Color),
		Title:      notification.Title,
		TitleLink:  notification.TitleLink,
		Text:       notification.Text,
		MarkdownIn: []string{"text", "pretext"},
	}

	_, _, err := c.Client.PostMessageContext(ctx, notification.ChannelID,
		slack.MsgOptionAttachments(attachment),
		slack.MsgOptionUsername(botUsername),
		slack.MsgOptionIconURL(botIconURL),
		slack.MsgOptionAsUser(false),
	)
	return err
}
