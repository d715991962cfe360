package models

import "time"

// Post is a user-authored publication, optionally tagged to a group and
// optionally illustrated with an uploaded image. CreatedAt is assigned once
// at creation and never mutated; only Text, GroupID and Image are editable,
// and only by the author.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Author    User      `json:"author" gorm:"constraint:OnDelete:CASCADE"`
	GroupID   *uint     `json:"group_id" gorm:"index"`
	Group     *Group    `json:"group,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	Image     string    `json:"image,omitempty"` // media-relative path of the uploaded image
}

// PostForm defines the post creation/edit form fields. Group carries the
// group id as submitted, empty meaning no group; it is resolved and checked
// against existing groups by the handler.
type PostForm struct {
	Text  string `form:"text" validate:"required"`
	Group string `form:"group" validate:"omitempty,numeric"`
}
