package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bunnypost/internal/model"
)

// PostRepository defines post persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Post, error)
	List(ctx context.Context, search string, page, limit int) ([]model.Post, int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository builds a GORM-backed post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{}).Error
}

// FindByID loads the bare row, enough for existence and ownership checks.
func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByIDWithRelations loads a post with its author, comments (and their
// authors) and likes for the detail view.
func (r *postRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Preload("Likes").
		Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns one page of posts, optionally filtered by a case-insensitive
// substring match against title or content, plus the global filtered count.
func (r *postRepository) List(ctx context.Context, search string, page, limit int) ([]model.Post, int64, error) {
	filter := func(tx *gorm.DB) *gorm.DB {
		if search == "" {
			return tx
		}
		pattern := "%" + search + "%"
		return tx.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := filter(r.db.WithContext(ctx).Model(&model.Post{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	if err := filter(r.db.WithContext(ctx)).
		Preload("Author").
		Preload("Comments").
		Preload("Likes").
		Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
