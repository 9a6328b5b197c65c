package commands

import (
	"context"
	"fmt"
	"log"

	"jirabot/models"
)

const helpText = "*Usage*: \n" +
	"        _current_ - `list my In Progress issues` \n" +
	"        _bug_ - `create a bug param: project_id, summary` \n" +
	"        _task_ - `create a task param: project_id, summary` \n" +
	"        _close_ - ` close an issue param: issue id` \n" +
	"        _assign_ - `assign an issue to someone  param issue id,assignee/me`"

// issueColor maps an issue status to the notification color bar
func issueColor(statusName string) models.NotificationColor {
	switch statusName {
	case "Open", "Reopened", "To Do":
		return models.ColorBlue
	case "Resolved", "Closed", "Done":
		return models.ColorGreen
	default:
		return models.ColorYellow
	}
}

// buildIssueNotification renders one issue into the outbound notification
// payload: title is the issue key linking into Jira, body carries summary,
// assignee and priority
func buildIssueNotification(issue models.Issue, channelID, jiraBaseURL string) models.Notification {
	return models.Notification{
		ChannelID: channelID,
		Color:     issueColor(issue.StatusName),
		Title:     issue.Key,
		TitleLink: jiraBaseURL + "/browse/" + issue.Key,
		Text: fmt.Sprintf("*%s*\n\n *Assignee* %s *Priority* %s",
			issue.Summary, issue.AssigneeName, issue.PriorityName),
	}
}

func (u *CommandsUseCase) postIssueNotification(ctx context.Context, channelID string, issue models.Issue) error {
	notification := buildIssueNotification(issue, channelID, u.jiraBaseURL)

	log.Printf("📤 Posting notification for issue %s to channel %s", issue.Key, channelID)
	if err := u.slackClient.PostNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to post notification for issue %s: %w", issue.Key, err)
	}
	return nil
}
