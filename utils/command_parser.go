package utils

import (
	"strings"

	"jirabot/models"
)

// ParseCommand splits raw slash-command text into a typed command.
// The first whitespace-separated token selects the action
// (case-insensitive), the second is the project or issue key (normalized
// upper-case), and the remainder is carried verbatim. Malformed or empty
// input never fails; it falls back to the help action.
func ParseCommand(text string) models.Command {
	fields := strings.Fields(text)

	if len(fields) == 0 {
		return models.Command{Action: models.ActionHelp}
	}

	action := parseAction(strings.ToLower(fields[0]))

	cmd := models.Command{Action: action}
	if len(fields) > 1 {
		cmd.Key = strings.ToUpper(fields[1])
	}
	if len(fields) > 2 {
		// Everything after the key is free text; trim prefixes off the raw
		// input so inner whitespace and punctuation survive untouched.
		rest := strings.TrimSpace(text)
		rest = strings.TrimSpace(strings.TrimPrefix(rest, fields[0]))
		rest = strings.TrimSpace(strings.TrimPrefix(rest, fields[1]))
		cmd.Text = rest
	}

	return cmd
}

func parseAction(token string) models.CommandAction {
	switch token {
	case "help":
		return models.ActionHelp
	case "current":
		return models.ActionCurrent
	case "bug":
		return models.ActionCreateBug
	case "task":
		return models.ActionCreateTask
	case "close":
		return models.ActionClose
	case "assign":
		return models.ActionAssign
	default:
		return models.ActionUnknown
	}
}
