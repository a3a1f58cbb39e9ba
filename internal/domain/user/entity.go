package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the users table. Password always holds the bcrypt hash,
// never the raw credential.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	Username   string    `gorm:"uniqueIndex;not null" json:"username"`
	Password   string    `gorm:"not null" json:"password"`
	DateJoined time.Time `json:"dateJoined"`
}

// SafeUser is the projection of User returned to clients. It carries no
// password field at all, so the hash can never leak through serialization.
type SafeUser struct {
	ID         uuid.UUID `json:"_id"`
	Username   string    `json:"username"`
	DateJoined time.Time `json:"dateJoined"`
}

// Credentials is a username/password pair presented at login.
type Credentials struct {
	Username string
	Password string
}

// Update holds the partial fields an update may touch. Nil means untouched.
type Update struct {
	Password *string
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Safe projects the user without its password.
func (u User) Safe() SafeUser {
	return SafeUser{
		ID:         u.ID,
		Username:   u.Username,
		DateJoined: u.DateJoined,
	}
}
