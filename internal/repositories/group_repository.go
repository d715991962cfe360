package repositories

import (
	"github.com/nkotova/yatube/internal/models"
	"gorm.io/gorm"
)

// GroupRepository defines the interface for group data operations
type GroupRepository interface {
	CreateGroup(group *models.Group) error
	GetGroupByID(id uint) (*models.Group, error)
	GetGroupBySlug(slug string) (*models.Group, error)
	GetGroups() ([]models.Group, error)
	DeleteGroup(id uint) error
}

// PostgresGroupRepository implements GroupRepository for PostgreSQL
type PostgresGroupRepository struct {
	db *gorm.DB
}

// NewPostgresGroupRepository creates a new PostgresGroupRepository
func NewPostgresGroupRepository(db *gorm.DB) *PostgresGroupRepository {
	return &PostgresGroupRepository{db: db}
}

// CreateGroup creates a new group
func (r *PostgresGroupRepository) CreateGroup(group *models.Group) error {
	return r.db.Create(group).Error
}

// GetGroupByID retrieves a group by ID
func (r *PostgresGroupRepository) GetGroupByID(id uint) (*models.Group, error) {
	var group models.Group
	if err := r.db.First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// GetGroupBySlug retrieves a group by its unique slug
func (r *PostgresGroupRepository) GetGroupBySlug(slug string) (*models.Group, error) {
	var group models.Group
	if err := r.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// GetGroups retrieves all groups ordered by ID, for the post form select
func (r *PostgresGroupRepository) GetGroups() ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.Order("id").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// DeleteGroup deletes a group by ID. Posts referencing it keep existing with
// their group reference set to NULL by the store.
func (r *PostgresGroupRepository) DeleteGroup(id uint) error {
	return r.db.Delete(&models.Group{}, id).Error
}
