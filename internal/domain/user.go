package domain

import "time"

// User is a Telegram user known to the bot
type User struct {
	UserID     int64
	Authorized bool
	CreatedAt  time.Time
}
