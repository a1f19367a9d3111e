package types

// Level grades a user-facing notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a message meant for the person using the application,
// as opposed to a log line meant for its operator.
type Notification struct {
	Level   Level
	Message string
}
