package repositories

import (
	"github.com/nkotova/yatube/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations. All listing
// methods return posts newest-first with author and group preloaded.
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error
	ListPosts(offset, limit int) ([]models.Post, error)
	ListPostsByGroup(groupID uint, offset, limit int) ([]models.Post, error)
	ListPostsByAuthor(authorID uint, offset, limit int) ([]models.Post, error)
	ListPostsByAuthors(authorIDs []uint, offset, limit int) ([]models.Post, error)
	CountPosts() (int64, error)
	CountPostsByGroup(groupID uint) (int64, error)
	CountPostsByAuthor(authorID uint) (int64, error)
	CountPostsByAuthors(authorIDs []uint) (int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// newestFirst orders by creation time, with id as a tiebreak so pages stay
// stable when several posts share a timestamp.
func (r *PostgresPostRepository) newestFirst() *gorm.DB {
	return r.db.Preload("Author").Preload("Group").
		Order("created_at DESC").Order("id DESC")
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID with author and group preloaded
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost persists an edit to a post's mutable fields. Author and creation
// time are never written.
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Model(&models.Post{ID: post.ID}).
		Select("text", "group_id", "image").
		Updates(map[string]interface{}{
			"text":     post.Text,
			"group_id": post.GroupID,
			"image":    post.Image,
		}).Error
}

// DeletePost deletes a post by ID; its comments cascade in the store
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// ListPosts retrieves a page of all posts
func (r *PostgresPostRepository) ListPosts(offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	if err := r.newestFirst().Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPostsByGroup retrieves a page of posts tagged to a group
func (r *PostgresPostRepository) ListPostsByGroup(groupID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.newestFirst().Where("group_id = ?", groupID).
		Offset(offset).Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPostsByAuthor retrieves a page of a single author's posts
func (r *PostgresPostRepository) ListPostsByAuthor(authorID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.newestFirst().Where("author_id = ?", authorID).
		Offset(offset).Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPostsByAuthors retrieves a page of posts authored by any of the given
// authors; used to assemble the follow feed
func (r *PostgresPostRepository) ListPostsByAuthors(authorIDs []uint, offset, limit int) ([]models.Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var posts []models.Post
	err := r.newestFirst().Where("author_id IN ?", authorIDs).
		Offset(offset).Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// CountPosts returns the total number of posts
func (r *PostgresPostRepository) CountPosts() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}

// CountPostsByGroup returns the number of posts tagged to a group
func (r *PostgresPostRepository) CountPostsByGroup(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// CountPostsByAuthor returns the number of posts by a single author
func (r *PostgresPostRepository) CountPostsByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// CountPostsByAuthors returns the number of posts by any of the given authors
func (r *PostgresPostRepository) CountPostsByAuthors(authorIDs []uint) (int64, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id IN ?", authorIDs).Count(&count).Error
	return count, err
}
