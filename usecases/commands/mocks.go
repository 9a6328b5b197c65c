package commands

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jirabot/models"
)

// MockCommandsUseCase is a mock implementation of usecases.CommandsUseCaseInterface
type MockCommandsUseCase struct {
	mock.Mock
}

func (m *MockCommandsUseCase) ProcessSlashCommand(ctx context.Context, req models.SlashCommandRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
