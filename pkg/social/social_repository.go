package social

import (
	"Foodgram-Go/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SocialRepository interface {
		CreateFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
		DeleteFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
		CreateFollow(ctx context.Context, userID, authorID uuid.UUID) error
		DeleteFollow(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
		GetFollowedAuthors(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.User, int64, error)
	}

	socialRepository struct {
		db *gorm.DB
	}
)

func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

// CreateFavorite relies on the store-level unique index; a concurrent
// duplicate surfaces as gorm.ErrDuplicatedKey for the caller to fold.
func (r *socialRepository) CreateFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	favorite := entities.Favorite{
		UserID:   userID,
		RecipeID: recipeID,
	}
	return r.db.WithContext(ctx).Create(&favorite).Error
}

func (r *socialRepository) DeleteFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Favorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *socialRepository) CreateFollow(ctx context.Context, userID, authorID uuid.UUID) error {
	follow := entities.Follow{
		UserID:   userID,
		AuthorID: authorID,
	}
	return r.db.WithContext(ctx).Create(&follow).Error
}

func (r *socialRepository) DeleteFollow(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&entities.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *socialRepository) GetFollowedAuthors(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.User, int64, error) {
	var authors []*entities.User
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Joins("JOIN follows ON users.id = follows.author_id").
		Where("follows.user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Joins("JOIN follows ON users.id = follows.author_id").
		Where("follows.user_id = ?", userID).
		Offset(offset).
		Limit(limit).
		Order("follows.created_at desc").
		Find(&authors).Error; err != nil {
		return nil, 0, err
	}

	return authors, count, nil
}
