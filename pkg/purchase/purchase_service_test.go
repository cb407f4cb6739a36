package purchase_test

import (
	"Foodgram-Go/domain"
	"Foodgram-Go/entities"
	"Foodgram-Go/pkg/purchase"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeSessionStore keeps the per-session lists in memory with the same
// ordered-set semantics as the redis-backed store.
type fakeSessionStore struct {
	lists map[string][]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{lists: make(map[string][]string)}
}

func (s *fakeSessionStore) listKey(sessionID, key string) string {
	return sessionID + ":" + key
}

func (s *fakeSessionStore) List(_ context.Context, sessionID, key string) ([]string, error) {
	return s.lists[s.listKey(sessionID, key)], nil
}

func (s *fakeSessionStore) Add(_ context.Context, sessionID, key, value string) (bool, error) {
	k := s.listKey(sessionID, key)
	for _, v := range s.lists[k] {
		if v == value {
			return false, nil
		}
	}
	s.lists[k] = append(s.lists[k], value)
	return true, nil
}

func (s *fakeSessionStore) Remove(_ context.Context, sessionID, key, value string) (bool, error) {
	k := s.listKey(sessionID, key)
	for i, v := range s.lists[k] {
		if v == value {
			s.lists[k] = append(s.lists[k][:i], s.lists[k][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeSessionStore) Toggle(ctx context.Context, sessionID, key, value string) ([]string, error) {
	removed, err := s.Remove(ctx, sessionID, key, value)
	if err != nil {
		return nil, err
	}
	if !removed {
		if _, err := s.Add(ctx, sessionID, key, value); err != nil {
			return nil, err
		}
	}
	return s.List(ctx, sessionID, key)
}

// fakeRecipeRepo serves recipes and their ingredient rows from memory.
type fakeRecipeRepo struct {
	recipes map[uuid.UUID]*entities.Recipe
	rows    map[uuid.UUID][]*entities.RecipeIngredient
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{
		recipes: make(map[uuid.UUID]*entities.Recipe),
		rows:    make(map[uuid.UUID][]*entities.RecipeIngredient),
	}
}

func (r *fakeRecipeRepo) addRecipe(name string, ingredients ...*entities.RecipeIngredient) uuid.UUID {
	id := uuid.New()
	r.recipes[id] = &entities.Recipe{ID: id, Name: name}
	r.rows[id] = ingredients
	return id
}

func ingredientRow(title, dimension string, amount int) *entities.RecipeIngredient {
	ingID := uuid.New()
	return &entities.RecipeIngredient{
		ID:           uuid.New(),
		IngredientID: ingID,
		Amount:       amount,
		Ingredient: &entities.Ingredient{
			ID:        ingID,
			Title:     title,
			Dimension: dimension,
		},
	}
}

func (r *fakeRecipeRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Recipe, error) {
	recipe, ok := r.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (r *fakeRecipeRepo) GetIngredientsByRecipeID(_ context.Context, recipeID uuid.UUID) ([]*entities.RecipeIngredient, error) {
	return r.rows[recipeID], nil
}

func (r *fakeRecipeRepo) CreateWithIngredients(context.Context, *entities.Recipe, []entities.RecipeIngredient) error {
	panic("not implemented")
}

func (r *fakeRecipeRepo) UpdateWithIngredients(context.Context, *entities.Recipe, []entities.RecipeIngredient) error {
	panic("not implemented")
}

func (r *fakeRecipeRepo) GetBySlugAndAuthor(context.Context, string, string) (*entities.Recipe, error) {
	panic("not implemented")
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

func (r *fakeRecipeRepo) Delete(context.Context, uuid.UUID) error {
	panic("not implemented")
}

func TestShoppingListAggregation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRecipeRepo()
	sessions := newFakeSessionStore()
	svc := purchase.NewPurchaseService(sessions, repo)

	recipeA := repo.addRecipe("Scrambled eggs",
		ingredientRow("Salt", "g", 5),
		ingredientRow("Egg", "pcs", 2),
	)
	recipeB := repo.addRecipe("Broth",
		ingredientRow("Salt", "g", 3),
	)

	sessionID := uuid.New().String()
	for _, id := range []uuid.UUID{recipeA, recipeB} {
		added, err := svc.AddPurchase(ctx, domain.ToggleRequest{ID: id.String()}, sessionID)
		if err != nil {
			t.Fatalf("add purchase: %v", err)
		}
		if !added {
			t.Fatalf("expected add to succeed for %s", id)
		}
	}

	content, err := svc.BuildShoppingList(ctx, sessionID)
	if err != nil {
		t.Fatalf("build shopping list: %v", err)
	}

	want := "Shopping list by Foodgram\n\nSalt - 8g\nEgg - 2pcs\n"
	if content != want {
		t.Fatalf("unexpected shopping list:\n got: %q\nwant: %q", content, want)
	}
}

func TestShoppingListIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRecipeRepo()
	sessions := newFakeSessionStore()
	svc := purchase.NewPurchaseService(sessions, repo)

	id := repo.addRecipe("Pancakes",
		ingredientRow("flour", "g", 200),
		ingredientRow("milk", "ml", 300),
	)
	sessionID := uuid.New().String()
	if _, err := svc.AddPurchase(ctx, domain.ToggleRequest{ID: id.String()}, sessionID); err != nil {
		t.Fatalf("add purchase: %v", err)
	}

	first, err := svc.BuildShoppingList(ctx, sessionID)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := svc.BuildShoppingList(ctx, sessionID)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical output, got %q then %q", first, second)
	}
}

func TestShoppingListCapitalizesTitles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRecipeRepo()
	sessions := newFakeSessionStore()
	svc := purchase.NewPurchaseService(sessions, repo)

	id := repo.addRecipe("Toast", ingredientRow("butter", "g", 20))
	sessionID := uuid.New().String()
	if _, err := svc.AddPurchase(ctx, domain.ToggleRequest{ID: id.String()}, sessionID); err != nil {
		t.Fatalf("add purchase: %v", err)
	}

	content, err := svc.BuildShoppingList(ctx, sessionID)
	if err != nil {
		t.Fatalf("build shopping list: %v", err)
	}
	want := fmt.Sprintf("%s\n\nButter - 20g\n", purchase.ShoppingListHeader)
	if content != want {
		t.Fatalf("unexpected shopping list:\n got: %q\nwant: %q", content, want)
	}
}

func TestShoppingListEmptySelection(t *testing.T) {
	t.Parallel()
	svc := purchase.NewPurchaseService(newFakeSessionStore(), newFakeRecipeRepo())

	_, err := svc.BuildShoppingList(context.Background(), uuid.New().String())
	if !errors.Is(err, domain.ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
}

func TestShoppingListConflictingUnits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRecipeRepo()
	sessions := newFakeSessionStore()
	svc := purchase.NewPurchaseService(sessions, repo)

	recipeA := repo.addRecipe("Soup", ingredientRow("Salt", "g", 5))
	recipeB := repo.addRecipe("Brine", ingredientRow("salt", "kg", 1))

	sessionID := uuid.New().String()
	for _, id := range []uuid.UUID{recipeA, recipeB} {
		if _, err := svc.AddPurchase(ctx, domain.ToggleRequest{ID: id.String()}, sessionID); err != nil {
			t.Fatalf("add purchase: %v", err)
		}
	}

	_, err := svc.BuildShoppingList(ctx, sessionID)
	if !errors.Is(err, domain.ErrConflictingUnits) {
		t.Fatalf("expected ErrConflictingUnits, got %v", err)
	}
}

func TestAddPurchaseSemantics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRecipeRepo()
	sessions := newFakeSessionStore()
	svc := purchase.NewPurchaseService(sessions, repo)

	id := repo.addRecipe("Salad")
	sessionID := uuid.New().String()

	added, err := svc.AddPurchase(ctx, domain.ToggleRequest{ID: id.String()}, sessionID)
	if err != nil || !added {
		t.Fatalf("first add: added=%v err=%v", added, err)
	}
	added, err = svc.AddPurchase(ctx, domain.ToggleRequest{ID: id.String()}, sessionID)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if added {
		t.Fatal("expected second add to report success=false")
	}

	if _, err := svc.AddPurchase(ctx, domain.ToggleRequest{ID: uuid.New().String()}, sessionID); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound for unknown recipe, got %v", err)
	}
}

func TestRemovePurchaseSemantics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeRecipeRepo()
	sessions := newFakeSessionStore()
	svc := purchase.NewPurchaseService(sessions, repo)

	id := repo.addRecipe("Salad")
	sessionID := uuid.New().String()

	removed, err := svc.RemovePurchase(ctx, id.String(), sessionID)
	if err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if removed {
		t.Fatal("expected removing an absent id to report success=false")
	}

	if _, err := svc.AddPurchase(ctx, domain.ToggleRequest{ID: id.String()}, sessionID); err != nil {
		t.Fatalf("add purchase: %v", err)
	}
	removed, err = svc.RemovePurchase(ctx, id.String(), sessionID)
	if err != nil || !removed {
		t.Fatalf("remove present: removed=%v err=%v", removed, err)
	}
}

func TestToggleTag(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := purchase.NewPurchaseService(newFakeSessionStore(), newFakeRecipeRepo())
	sessionID := uuid.New().String()

	tags, err := svc.ToggleTag(ctx, sessionID, domain.TagBreakfast)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if len(tags) != 1 || tags[0] != domain.TagBreakfast {
		t.Fatalf("expected [breakfast], got %v", tags)
	}

	tags, err = svc.ToggleTag(ctx, sessionID, domain.TagDinner)
	if err != nil {
		t.Fatalf("toggle second: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("expected two active tags, got %v", tags)
	}

	tags, err = svc.ToggleTag(ctx, sessionID, domain.TagBreakfast)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if len(tags) != 1 || tags[0] != domain.TagDinner {
		t.Fatalf("expected [dinner] after removal by value, got %v", tags)
	}

	if _, err := svc.ToggleTag(ctx, sessionID, "brunch"); !errors.Is(err, domain.ErrInvalidTag) {
		t.Fatalf("expected ErrInvalidTag, got %v", err)
	}
}
