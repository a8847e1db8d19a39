// internal/models/user.go
package models

import "time"

// User is an account record. Passwords are stored and compared as plaintext;
// hashing is deliberately not applied.
type User struct {
	ID        string    `json:"id" gorm:"type:uuid;primary_key"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string    `json:"password,omitempty" gorm:"size:255;not null"`
	FirstName string    `json:"firstName" gorm:"size:100;not null"`
	LastName  string    `json:"lastName" gorm:"size:100;not null"`
	Role      UserRole  `json:"role" gorm:"type:varchar(20);default:'customer'"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sanitized returns a copy with the password stripped. Every user that leaves
// the API goes through this.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
