package models

// User represents a registered user of the news board. Users are referenced
// by articles and comments as author; the username is the unique key.
type User struct {
	Username  string `json:"username" db:"username"`
	Name      string `json:"name" db:"name"`
	AvatarURL string `json:"avatar_url" db:"avatar_url"`
}

// TableName returns the database table name for the User model.
func (u *User) TableName() string {
	return "users"
}
