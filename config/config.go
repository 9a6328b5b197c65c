package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type JiraConfig struct {
	BaseURL  string
	Username string
	Password string
}

// IsConfigured returns true if all required Jira configuration is present
func (c JiraConfig) IsConfigured() bool {
	return c.BaseURL != "" &&
		c.Username != "" &&
		c.Password != ""
}

type SlackConfig struct {
	BotToken        string
	SigningSecret   string
	TeamID          string
	AlertWebhookURL string
}

// IsConfigured returns true if all required Slack configuration is present
func (c SlackConfig) IsConfigured() bool {
	return c.BotToken != "" &&
		c.SigningSecret != ""
	// Note: TeamID and AlertWebhookURL are optional
}

type AppConfig struct {
	Port        string // Optional with default "5001"
	Environment string

	JiraConfig  JiraConfig
	SlackConfig SlackConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	config := &AppConfig{
		Port:        getEnvWithDefault("PORT", "5001"),
		Environment: getEnvWithDefault("ENVIRONMENT", "dev"),

		JiraConfig: JiraConfig{
			BaseURL:  os.Getenv("JIRA_URL"),
			Username: os.Getenv("JIRA_USER"),
			Password: os.Getenv("JIRA_PASSWORD"),
		},

		SlackConfig: SlackConfig{
			BotToken:        os.Getenv("SLACK_TOKEN"),
			SigningSecret:   os.Getenv("SLACK_SIGNING_SECRET"),
			TeamID:          os.Getenv("SLACK_TEAM_ID"),
			AlertWebhookURL: os.Getenv("SLACK_ALERT_WEBHOOK_URL"),
		},
	}

	if !config.JiraConfig.IsConfigured() {
		return nil, fmt.Errorf("jira integration is not fully configured (JIRA_URL, JIRA_USER, JIRA_PASSWORD)")
	}

	if !config.SlackConfig.IsConfigured() {
		return nil, fmt.Errorf("slack integration is not fully configured (SLACK_TOKEN, SLACK_SIGNING_SECRET)")
	}

	return config, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
