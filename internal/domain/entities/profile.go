package entities

import "time"

// Profile is an isolated learner identity with its own analytics document.
type Profile struct {
	ID        string
	Name      string
	IsAdmin   bool
	ChatID    int64 // linked Telegram chat for review reminders, 0 = not linked
	CreatedAt time.Time
}

func NewProfile(id, name string) *Profile {
	return &Profile{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now(),
	}
}
