package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bunnypost/internal/model"
)

// LikeRepository defines like persistence operations.
type LikeRepository interface {
	Create(ctx context.Context, like *model.Like) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository builds a GORM-backed like repository.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *model.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Like{}).Error
}

func (r *likeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Like, error) {
	var like model.Like
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}
