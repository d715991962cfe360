package models

import "time"

// User is a registered author. Referenced by posts, comments and follows.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:150;uniqueIndex;not null"`
	FirstName string    `json:"first_name" gorm:"size:150"`
	LastName  string    `json:"last_name" gorm:"size:150"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at"`
}

// FullName is how an author is labeled on profile pages. Value receiver so
// templates can call it on embedded User values.
func (u User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

// SignupForm defines the signup form fields.
type SignupForm struct {
	Username  string `form:"username" validate:"required,min=2,max=150"`
	FirstName string `form:"first_name" validate:"max=150"`
	LastName  string `form:"last_name" validate:"max=150"`
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"password" validate:"required,min=8"`
}

// LoginForm defines the login form fields.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
