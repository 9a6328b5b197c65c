package models

// CommandAction identifies the Jira operation requested by a slash command
type CommandAction string

const (
	ActionHelp       CommandAction = "help"
	ActionCurrent    CommandAction = "current"
	ActionCreateBug  CommandAction = "bug"
	ActionCreateTask CommandAction = "task"
	ActionClose      CommandAction = "close"
	ActionAssign     CommandAction = "assign"
	ActionUnknown    CommandAction = "unknown"
)

// Command is the parsed form of one slash-command invocation.
// Key is normalized upper-case; Text is the untouched remainder.
type Command struct {
	Action CommandAction
	Key    string
	Text   string
}

// SlashCommandRequest carries the fields of an incoming slash-command
// payload that the command pipeline consumes
type SlashCommandRequest struct {
	UserID    string
	ChannelID string
	TeamID    string
	Text      string
}
