package repositories

import (
	"github.com/nkotova/yatube/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for follow relation data operations
type FollowRepository interface {
	CreateFollow(userID, authorID uint) error
	DeleteFollow(userID, authorID uint) error
	IsFollowing(userID, authorID uint) (bool, error)
	GetFollowedAuthorIDs(userID uint) ([]uint, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// CreateFollow records a subscription of userID to authorID. The insert is
// idempotent: the (user, author) unique index absorbs a concurrent or repeated
// follow instead of racing a check-then-insert in application code.
func (r *PostgresFollowRepository) CreateFollow(userID, authorID uint) error {
	follow := models.Follow{UserID: userID, AuthorID: authorID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error
}

// DeleteFollow removes a subscription. Returns gorm.ErrRecordNotFound if no
// such relation exists.
func (r *PostgresFollowRepository) DeleteFollow(userID, authorID uint) error {
	res := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsFollowing reports whether userID follows authorID
func (r *PostgresFollowRepository) IsFollowing(userID, authorID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowedAuthorIDs returns the IDs of every author userID follows
func (r *PostgresFollowRepository) GetFollowedAuthorIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("user_id = ?", userID).
		Pluck("author_id", &ids).Error
	return ids, err
}
