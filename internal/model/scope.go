package model

// Scope identifies who issued a command.
type Scope struct {
	UserID   string // e.g. "telegram_12345" or "cli"
	Username string
	ChatID   int64
}
