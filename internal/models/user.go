package models

// User represents a user in the system.
//
// Identity is claimed, not proven: the login identifier is either handed to
// us by an external provider or synthesized as "local:<something>" on first
// login. Username and email are mutable alternate lookup keys and are not
// required to be globally unique. Empty strings stand in for absent values,
// matching how the TEXT columns behave in existing databases.
type User struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	LoginIdentifier string `gorm:"column:login_identifier;size:255;uniqueIndex" json:"login_identifier"`
	Username        string `gorm:"size:255" json:"username"`
	DisplayName     string `gorm:"size:255" json:"display_name"`
	ProfileURL      string `gorm:"size:512" json:"profile_url"`
	Email           string `gorm:"size:255" json:"email"`
	CreatedAt       string `gorm:"size:32" json:"created_at"`
	LastLogin       string `gorm:"size:32" json:"last_login"`
}

// DisplayKey is the stable key friends are sorted by: username, else email,
// else the login identifier.
func (u *User) DisplayKey() string {
	if u.Username != "" {
		return u.Username
	}
	if u.Email != "" {
		return u.Email
	}
	return u.LoginIdentifier
}
