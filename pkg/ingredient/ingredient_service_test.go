package ingredient_test

import (
	"Foodgram-Go/entities"
	"Foodgram-Go/pkg/ingredient"
	"context"
	"testing"
)

type fakeIngredientRepo struct {
	lastPrefix string
	results    []*entities.Ingredient
}

func (r *fakeIngredientRepo) SearchByPrefix(_ context.Context, prefix string) ([]*entities.Ingredient, error) {
	r.lastPrefix = prefix
	return r.results, nil
}

func (r *fakeIngredientRepo) GetByTitleAndDimension(context.Context, string, string) (*entities.Ingredient, error) {
	panic("not implemented")
}

func TestSearchLowercasesQuery(t *testing.T) {
	t.Parallel()
	repo := &fakeIngredientRepo{}
	svc := ingredient.NewIngredientService(repo)

	if _, err := svc.Search(context.Background(), "Sa"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if repo.lastPrefix != "sa" {
		t.Fatalf("expected lowercased prefix %q, got %q", "sa", repo.lastPrefix)
	}
}

func TestSearchProjectsTitleAndDimension(t *testing.T) {
	t.Parallel()
	repo := &fakeIngredientRepo{results: []*entities.Ingredient{
		{Title: "salt", Dimension: "g"},
		{Title: "sausage", Dimension: "pcs"},
	}}
	svc := ingredient.NewIngredientService(repo)

	res, err := svc.Search(context.Background(), "sa")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res))
	}
	if res[0].Title != "salt" || res[0].Dimension != "g" {
		t.Fatalf("unexpected first result: %+v", res[0])
	}
}

func TestSearchEmptyResult(t *testing.T) {
	t.Parallel()
	svc := ingredient.NewIngredientService(&fakeIngredientRepo{})

	res, err := svc.Search(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(res) != 0 {
		t.Fatalf("expected empty slice, got %d results", len(res))
	}
}
