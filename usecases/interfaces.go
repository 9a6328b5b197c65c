package usecases

import (
	"context"

	"jirabot/models"
)

// CommandsUseCaseInterface defines the interface for slash-command processing
type CommandsUseCaseInterface interface {
	ProcessSlashCommand(ctx context.Context, req models.SlashCommandRequest) (string, error)
}
