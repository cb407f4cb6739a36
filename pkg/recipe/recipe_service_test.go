package recipe_test

import (
	"Foodgram-Go/domain"
	"Foodgram-Go/entities"
	"Foodgram-Go/pkg/recipe"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeIngredientRepo resolves (title, dimension) pairs from a fixed catalog.
type fakeIngredientRepo struct {
	catalog map[string]*entities.Ingredient
}

func newFakeIngredientRepo(pairs ...[2]string) *fakeIngredientRepo {
	repo := &fakeIngredientRepo{catalog: make(map[string]*entities.Ingredient)}
	for _, p := range pairs {
		repo.catalog[p[0]+"|"+p[1]] = &entities.Ingredient{
			ID:        uuid.New(),
			Title:     p[0],
			Dimension: p[1],
		}
	}
	return repo
}

func (r *fakeIngredientRepo) GetByTitleAndDimension(_ context.Context, title, dimension string) (*entities.Ingredient, error) {
	ing, ok := r.catalog[title+"|"+dimension]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ing, nil
}

func (r *fakeIngredientRepo) SearchByPrefix(context.Context, string) ([]*entities.Ingredient, error) {
	panic("not implemented")
}

// fakeRecipeRepo records writes so tests can assert what was persisted.
type fakeRecipeRepo struct {
	recipes map[uuid.UUID]*entities.Recipe

	created     *entities.Recipe
	createdRows []entities.RecipeIngredient
	updated     *entities.Recipe
	updatedRows []entities.RecipeIngredient
	updateCalls int
	deleteCalls int
}

func newRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: make(map[uuid.UUID]*entities.Recipe)}
}

func (r *fakeRecipeRepo) CreateWithIngredients(_ context.Context, recipe *entities.Recipe, rows []entities.RecipeIngredient) error {
	recipe.ID = uuid.New()
	r.created = recipe
	r.createdRows = rows
	r.recipes[recipe.ID] = recipe
	return nil
}

func (r *fakeRecipeRepo) UpdateWithIngredients(_ context.Context, recipe *entities.Recipe, rows []entities.RecipeIngredient) error {
	r.updated = recipe
	r.updatedRows = rows
	r.updateCalls++
	return nil
}

func (r *fakeRecipeRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Recipe, error) {
	recipe, ok := r.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (r *fakeRecipeRepo) GetBySlugAndAuthor(_ context.Context, username, slug string) (*entities.Recipe, error) {
	for _, recipe := range r.recipes {
		if recipe.Slug == slug && recipe.Author != nil && recipe.Author.Username == username {
			return recipe, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRecipeRepo) GetRecipes(context.Context, []string, int, int) ([]*entities.Recipe, int64, error) {
	panic("not implemented")
}

func (r *fakeRecipeRepo) GetFavoriteRecipes(context.Context, uuid.UUID, int, int) ([]*entities.Recipe, int64, error) {
	panic("not implemented")
}

func (r *fakeRecipeRepo) GetByAuthorID(context.Context, uuid.UUID) ([]*entities.Recipe, error) {
	panic("not implemented")
}

func (r *fakeRecipeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.deleteCalls++
	delete(r.recipes, id)
	return nil
}

func (r *fakeRecipeRepo) GetIngredientsByRecipeID(context.Context, uuid.UUID) ([]*entities.RecipeIngredient, error) {
	return nil, nil
}

func validRequest() domain.SaveRecipeRequest {
	return domain.SaveRecipeRequest{
		Name:              "Pasta Carbonara",
		Description:       "classic",
		Tags:              []string{domain.TagDinner},
		CookingTime:       25,
		IngredientNames:   []string{"pasta", "egg"},
		IngredientUnits:   []string{"g", "pcs"},
		IngredientAmounts: []int{200, 3},
	}
}

func newService(repo *fakeRecipeRepo, ingredients *fakeIngredientRepo) recipe.RecipeService {
	return recipe.NewRecipeService(repo, ingredients)
}

func TestCreateRecipe(t *testing.T) {
	t.Parallel()
	repo := newRecipeRepo()
	ingredients := newFakeIngredientRepo([2]string{"pasta", "g"}, [2]string{"egg", "pcs"})
	svc := newService(repo, ingredients)

	res, err := svc.CreateRecipe(context.Background(), validRequest(), uuid.New().String())
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if res.Slug != "pasta-carbonara" {
		t.Fatalf("expected slug pasta-carbonara, got %q", res.Slug)
	}
	if len(repo.createdRows) != 2 {
		t.Fatalf("expected 2 ingredient rows persisted, got %d", len(repo.createdRows))
	}
	if repo.created.PubDate.IsZero() {
		t.Fatal("expected publish date to be set")
	}
	if len(res.Ingredients) != 2 || res.Ingredients[0].Title != "pasta" {
		t.Fatalf("unexpected ingredients in response: %+v", res.Ingredients)
	}
}

func TestCreateRecipeSkipsDuplicateIngredients(t *testing.T) {
	t.Parallel()
	repo := newRecipeRepo()
	ingredients := newFakeIngredientRepo([2]string{"salt", "g"})
	svc := newService(repo, ingredients)

	req := validRequest()
	req.IngredientNames = []string{"salt", "salt"}
	req.IngredientUnits = []string{"g", "g"}
	req.IngredientAmounts = []int{5, 10}

	res, err := svc.CreateRecipe(context.Background(), req, uuid.New().String())
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if len(repo.createdRows) != 1 {
		t.Fatalf("expected duplicate pair collapsed to 1 row, got %d", len(repo.createdRows))
	}
	if res.Ingredients[0].Amount != 5 {
		t.Fatalf("expected first occurrence kept (amount 5), got %d", res.Ingredients[0].Amount)
	}
}

func TestCreateRecipeFormErrors(t *testing.T) {
	t.Parallel()
	ingredients := newFakeIngredientRepo([2]string{"pasta", "g"}, [2]string{"egg", "pcs"})

	cases := []struct {
		name    string
		mutate  func(*domain.SaveRecipeRequest)
		wantErr error
	}{
		{
			name:    "no ingredients",
			mutate:  func(r *domain.SaveRecipeRequest) { r.IngredientNames = nil; r.IngredientUnits = nil; r.IngredientAmounts = nil },
			wantErr: domain.ErrIngredientsRequired,
		},
		{
			name:    "length mismatch",
			mutate:  func(r *domain.SaveRecipeRequest) { r.IngredientAmounts = []int{200} },
			wantErr: domain.ErrIngredientsRequired,
		},
		{
			name:    "negative amount",
			mutate:  func(r *domain.SaveRecipeRequest) { r.IngredientAmounts = []int{200, -1} },
			wantErr: domain.ErrNegativeAmount,
		},
		{
			name:    "unknown ingredient",
			mutate:  func(r *domain.SaveRecipeRequest) { r.IngredientNames = []string{"pasta", "truffle"} },
			wantErr: domain.ErrIngredientNotFound,
		},
		{
			name:    "unknown tag",
			mutate:  func(r *domain.SaveRecipeRequest) { r.Tags = []string{"brunch"} },
			wantErr: domain.ErrInvalidTag,
		},
		{
			name:    "zero cooking time",
			mutate:  func(r *domain.SaveRecipeRequest) { r.CookingTime = 0 },
			wantErr: domain.ErrInvalidCookTime,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newRecipeRepo()
			svc := newService(repo, ingredients)
			req := validRequest()
			tc.mutate(&req)

			_, err := svc.CreateRecipe(context.Background(), req, uuid.New().String())
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if repo.created != nil {
				t.Fatal("expected nothing persisted on validation failure")
			}
		})
	}
}

func seedRecipe(repo *fakeRecipeRepo, authorID uuid.UUID) *entities.Recipe {
	r := &entities.Recipe{
		ID:       uuid.New(),
		AuthorID: authorID,
		Name:     "Old Name",
		Slug:     "old-name",
		Author:   &entities.User{ID: authorID, Username: "chef"},
	}
	repo.recipes[r.ID] = r
	return r
}

func TestUpdateRecipeReplacesIngredients(t *testing.T) {
	t.Parallel()
	repo := newRecipeRepo()
	ingredients := newFakeIngredientRepo([2]string{"pasta", "g"}, [2]string{"egg", "pcs"})
	svc := newService(repo, ingredients)

	authorID := uuid.New()
	seedRecipe(repo, authorID)

	res, err := svc.UpdateRecipe(context.Background(), "chef", "old-name", validRequest(), authorID.String())
	if err != nil {
		t.Fatalf("update recipe: %v", err)
	}
	if repo.updateCalls != 1 {
		t.Fatalf("expected one atomic update call, got %d", repo.updateCalls)
	}
	if res.Slug != "pasta-carbonara" {
		t.Fatalf("expected slug recomputed from the new name, got %q", res.Slug)
	}
	if len(repo.updatedRows) != 2 {
		t.Fatalf("expected 2 replacement rows, got %d", len(repo.updatedRows))
	}
}

func TestUpdateRecipeNonAuthor(t *testing.T) {
	t.Parallel()
	repo := newRecipeRepo()
	ingredients := newFakeIngredientRepo([2]string{"pasta", "g"}, [2]string{"egg", "pcs"})
	svc := newService(repo, ingredients)

	seedRecipe(repo, uuid.New())

	_, err := svc.UpdateRecipe(context.Background(), "chef", "old-name", validRequest(), uuid.New().String())
	if !errors.Is(err, domain.ErrNotRecipeAuthor) {
		t.Fatalf("expected ErrNotRecipeAuthor, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatal("expected no write for a non-author")
	}
}

func TestDeleteRecipe(t *testing.T) {
	t.Parallel()
	repo := newRecipeRepo()
	svc := newService(repo, newFakeIngredientRepo())

	authorID := uuid.New()
	seedRecipe(repo, authorID)

	if err := svc.DeleteRecipe(context.Background(), "chef", "old-name", uuid.New().String()); !errors.Is(err, domain.ErrNotRecipeAuthor) {
		t.Fatalf("expected ErrNotRecipeAuthor for a stranger, got %v", err)
	}
	if repo.deleteCalls != 0 {
		t.Fatal("expected no delete for a non-author")
	}

	if err := svc.DeleteRecipe(context.Background(), "chef", "old-name", authorID.String()); err != nil {
		t.Fatalf("delete by author: %v", err)
	}
	if repo.deleteCalls != 1 {
		t.Fatalf("expected one delete, got %d", repo.deleteCalls)
	}

	if err := svc.DeleteRecipe(context.Background(), "chef", "old-name", authorID.String()); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound after deletion, got %v", err)
	}
}
