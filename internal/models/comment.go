package models

import "time"

// Comment is a reply attached to a post. CreatedAt is immutable.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Author    User      `json:"author" gorm:"constraint:OnDelete:CASCADE"`
	PostID    uint      `json:"post_id" gorm:"index;not null"`
	Post      Post      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// CommentForm defines the comment form fields.
type CommentForm struct {
	Text string `form:"text" validate:"required"`
}
