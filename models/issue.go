package models

// Issue is the slice of a Jira issue this service reads and renders.
// It is never cached beyond a single response render.
type Issue struct {
	Key          string
	Summary      string
	StatusName   string
	AssigneeName string
	PriorityName string
}
