package models

import "time"

// Follow is a one-directional subscription from a reader to an author.
// The (user, author) pair is unique at the database level; the no-self-follow
// rule is enforced in the follow handler, not by the schema.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_author"`
	AuthorID  uint      `json:"author_id" gorm:"index;uniqueIndex:idx_user_author"`
	CreatedAt time.Time `json:"created_at"`
}
