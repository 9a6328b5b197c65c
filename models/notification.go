package models

// NotificationColor is the attachment color bar shown next to a notification
type NotificationColor string

const (
	ColorBlue   NotificationColor = "#0000FF"
	ColorGreen  NotificationColor = "#008000"
	ColorYellow NotificationColor = "#FFFF00"
	ColorRed    NotificationColor = "#FF0000"
)

// Notification is one outbound channel message describing an issue.
// Rendered and sent exactly once per issue per command.
type Notification struct {
	ChannelID string
	Color     NotificationColor
	Title     string
	TitleLink string
	Text      string
}
