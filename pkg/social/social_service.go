package social

import (
	"Foodgram-Go/domain"
	"Foodgram-Go/entities"
	"Foodgram-Go/pkg/recipe"
	"Foodgram-Go/pkg/user"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SocialService interface {
		FavoriteRecipe(ctx context.Context, req domain.ToggleRequest, userID string) (bool, error)
		UnfavoriteRecipe(ctx context.Context, recipeID, userID string) error
		FollowAuthor(ctx context.Context, req domain.ToggleRequest, userID string) (bool, error)
		UnfollowAuthor(ctx context.Context, authorID, userID string) error
		GetFollowedAuthors(ctx context.Context, userID string, page, limit int) ([]domain.AuthorResponse, int64, error)
	}

	socialService struct {
		socialRepository SocialRepository
		recipeRepository recipe.RecipeRepository
		userRepository   user.UserRepository
	}
)

func NewSocialService(socialRepository SocialRepository, recipeRepository recipe.RecipeRepository, userRepository user.UserRepository) SocialService {
	return &socialService{
		socialRepository: socialRepository,
		recipeRepository: recipeRepository,
		userRepository:   userRepository,
	}
}

// FavoriteRecipe reports created=false when the pair already exists,
// including when a concurrent request won the race on the unique index.
func (s *socialService) FavoriteRecipe(ctx context.Context, req domain.ToggleRequest, userID string) (bool, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return false, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(req.ID)
	if err != nil {
		return false, domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetByID(ctx, recipeUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrRecipeNotFound
		}
		return false, err
	}

	if err := s.socialRepository.CreateFavorite(ctx, userUUID, recipeUUID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *socialService) UnfavoriteRecipe(ctx context.Context, recipeID, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetByID(ctx, recipeUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	removed, err := s.socialRepository.DeleteFavorite(ctx, userUUID, recipeUUID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

func (s *socialService) FollowAuthor(ctx context.Context, req domain.ToggleRequest, userID string) (bool, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return false, domain.ErrParseUUID
	}
	authorUUID, err := uuid.Parse(req.ID)
	if err != nil {
		return false, domain.ErrParseUUID
	}
	if userUUID == authorUUID {
		return false, domain.ErrSelfFollow
	}

	if _, err := s.userRepository.GetUserByID(ctx, authorUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrUserNotFound
		}
		return false, err
	}

	if err := s.socialRepository.CreateFollow(ctx, userUUID, authorUUID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *socialService) UnfollowAuthor(ctx context.Context, authorID, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	authorUUID, err := uuid.Parse(authorID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.userRepository.GetUserByID(ctx, authorUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	removed, err := s.socialRepository.DeleteFollow(ctx, userUUID, authorUUID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrFollowNotFound
	}
	return nil
}

func (s *socialService) GetFollowedAuthors(ctx context.Context, userID string, page, limit int) ([]domain.AuthorResponse, int64, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, 0, domain.ErrParseUUID
	}

	authors, count, err := s.socialRepository.GetFollowedAuthors(ctx, userUUID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.AuthorResponse, 0, len(authors))
	for _, author := range authors {
		res = append(res, toAuthorResponse(author))
	}
	return res, count, nil
}

func toAuthorResponse(author *entities.User) domain.AuthorResponse {
	return domain.AuthorResponse{
		ID:       author.ID.String(),
		Username: author.Username,
		Name:     author.Name,
	}
}
