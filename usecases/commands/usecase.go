package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"jirabot/clients"
	"jirabot/core"
	"jirabot/models"
	"jirabot/services"
	"jirabot/utils"
)

// User-facing gate-failure messages. These are returned as the synchronous
// slash-command response; nothing is posted to the channel for them.
const (
	msgProjectNotFound = "Error Project not found!"
	msgIssueNotFound   = "Error Issue not found!"
	msgUserNotFound    = "Error User not found!"
)

const (
	issueTypeBug        = "Bug"
	issueTypeTask       = "Task"
	closeTransitionName = "Close Issue"
)

// CommandsUseCase processes one slash command end to end: parse, validate
// against live Jira state, execute, and post resulting notifications
type CommandsUseCase struct {
	slackClient       clients.SlackClient
	jiraClient        clients.JiraClient
	identityService   services.IdentityService
	validationService services.ValidationService
	jiraBaseURL       string
}

// NewCommandsUseCase creates a new instance of CommandsUseCase
func NewCommandsUseCase(
	slackClient clients.SlackClient,
	jiraClient clients.JiraClient,
	identityService services.IdentityService,
	validationService services.ValidationService,
	jiraBaseURL string,
) *CommandsUseCase {
	return &CommandsUseCase{
		slackClient:       slackClient,
		jiraClient:        jiraClient,
		identityService:   identityService,
		validationService: validationService,
		jiraBaseURL:       jiraBaseURL,
	}
}

// ProcessSlashCommand handles a single slash-command invocation and returns
// the synchronous response text: empty on success paths that post to the
// channel, help text for unknown input, or a gate-failure message. A non-nil
// error means a transport failure; the caller must fail the whole command.
func (u *CommandsUseCase) ProcessSlashCommand(ctx context.Context, req models.SlashCommandRequest) (string, error) {
	requestID := core.NewID("req")
	log.Printf("⚡ [%s] Processing slash command from user %s in channel %s: %q",
		requestID, req.UserID, req.ChannelID, req.Text)

	cmd := utils.ParseCommand(req.Text)

	switch cmd.Action {
	case models.ActionHelp, models.ActionUnknown:
		return helpText, nil
	case models.ActionCurrent:
		return u.listCurrentIssues(ctx, req)
	case models.ActionCreateBug:
		return u.createIssue(ctx, req, cmd, issueTypeBug)
	case models.ActionCreateTask:
		return u.createIssue(ctx, req, cmd, issueTypeTask)
	case models.ActionClose:
		return u.closeIssue(ctx, req, cmd)
	case models.ActionAssign:
		return u.assignIssue(ctx, req, cmd)
	default:
		return helpText, nil
	}
}

// listCurrentIssues posts one notification per "In Progress" issue assigned
// to the invoking user. Zero matches is a success with no notifications.
func (u *CommandsUseCase) listCurrentIssues(ctx context.Context, req models.SlashCommandRequest) (string, error) {
	maybeUser, err := u.identityService.ResolveSlackUser(ctx, req.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve invoking user: %w", err)
	}
	if !maybeUser.IsPresent() {
		return msgUserNotFound, nil
	}
	user := maybeUser.MustGet()

	jql := fmt.Sprintf(`status = "In Progress" AND assignee = %s`, user)
	issues, err := u.jiraClient.SearchIssues(ctx, jql)
	if err != nil {
		return "", fmt.Errorf("failed to search current issues: %w", err)
	}

	log.Printf("📋 Found %d In Progress issues for %s", len(issues), user)
	for _, issue := range issues {
		if err := u.postIssueNotification(ctx, req.ChannelID, issue); err != nil {
			return "", err
		}
	}
	return "", nil
}

func (u *CommandsUseCase) createIssue(
	ctx context.Context,
	req models.SlashCommandRequest,
	cmd models.Command,
	issueType string,
) (string, error) {
	exists, err := u.validationService.ProjectExists(ctx, cmd.Key)
	if err != nil {
		return "", fmt.Errorf("failed to validate project key: %w", err)
	}
	if !exists {
		return msgProjectNotFound, nil
	}

	maybeUser, err := u.identityService.ResolveSlackUser(ctx, req.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve invoking user: %w", err)
	}
	if !maybeUser.IsPresent() {
		return msgUserNotFound, nil
	}
	user := maybeUser.MustGet()

	issue, err := u.jiraClient.CreateIssue(ctx, clients.CreateIssueRequest{
		ProjectKey: cmd.Key,
		Summary:    cmd.Text,
		IssueType:  issueType,
		Reporter:   user,
		Assignee:   user,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", issueType, err)
	}

	log.Printf("✅ Created %s %s in project %s", issueType, issue.Key, cmd.Key)
	if err := u.postIssueNotification(ctx, req.ChannelID, *issue); err != nil {
		return "", err
	}
	return "", nil
}

func (u *CommandsUseCase) closeIssue(ctx context.Context, req models.SlashCommandRequest, cmd models.Command) (string, error) {
	exists, err := u.validationService.IssueExists(ctx, cmd.Key)
	if err != nil {
		return "", fmt.Errorf("failed to validate issue key: %w", err)
	}
	if !exists {
		return msgIssueNotFound, nil
	}

	transitions, err := u.jiraClient.ListTransitions(ctx, cmd.Key)
	if err != nil {
		return "", fmt.Errorf("failed to list transitions: %w", err)
	}

	// A workflow without a "Close Issue" transition is a silent no-op:
	// the issue is still rendered, unchanged.
	applied := false
	for _, transition := range transitions {
		if transition.Name == closeTransitionName {
			if err := u.jiraClient.ApplyTransition(ctx, cmd.Key, transition.ID); err != nil {
				return "", fmt.Errorf("failed to close issue: %w", err)
			}
			applied = true
			break
		}
	}
	if !applied {
		log.Printf("⚠️ Issue %s has no %q transition - leaving unchanged", cmd.Key, closeTransitionName)
	}

	issue, err := u.jiraClient.GetIssue(ctx, cmd.Key)
	if err != nil {
		return "", fmt.Errorf("failed to fetch issue after close: %w", err)
	}

	if err := u.postIssueNotification(ctx, req.ChannelID, *issue); err != nil {
		return "", err
	}
	return "", nil
}

func (u *CommandsUseCase) assignIssue(ctx context.Context, req models.SlashCommandRequest, cmd models.Command) (string, error) {
	exists, err := u.validationService.IssueExists(ctx, cmd.Key)
	if err != nil {
		return "", fmt.Errorf("failed to validate issue key: %w", err)
	}
	if !exists {
		return msgIssueNotFound, nil
	}

	// The literal token "me" maps to the invoking user; anything else is a
	// directory search with the single-match rule.
	var maybeAssignee mo.Option[string]
	if cmd.Text == "me" {
		maybeAssignee, err = u.identityService.ResolveSlackUser(ctx, req.UserID)
	} else {
		maybeAssignee, err = u.identityService.ResolveByText(ctx, cmd.Text)
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve assignee: %w", err)
	}
	if !maybeAssignee.IsPresent() {
		return msgUserNotFound, nil
	}
	assignee := maybeAssignee.MustGet()

	if err := u.jiraClient.SetAssignee(ctx, cmd.Key, assignee); err != nil {
		return "", fmt.Errorf("failed to set assignee: %w", err)
	}

	log.Printf("✅ Assigned issue %s to %s", cmd.Key, assignee)
	issue, err := u.jiraClient.GetIssue(ctx, cmd.Key)
	if err != nil {
		return "", fmt.Errorf("failed to fetch issue after assign: %w", err)
	}

	if err := u.postIssueNotification(ctx, req.ChannelID, *issue); err != nil {
		return "", err
	}
	return "", nil
}
