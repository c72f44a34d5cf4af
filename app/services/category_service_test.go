package services_test

import (
	"errors"
	"testing"

	"github.com/shashiranjanraj/vyapari/app/models"
	"github.com/shashiranjanraj/vyapari/app/services"
)

func TestCategoryDeleteDetachesProducts(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	user := seedUser(t, db, "cat@example.com")
	svc := services.NewCategoryService(r.categories)

	category, err := svc.Create(user.ID, "Grocery")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, name := range []string{"Rice", "Oil", "Salt"} {
		product := models.Product{UserID: user.ID, Name: name, Price: dec("1.00"), CategoryID: &category.ID}
		if err := db.Create(&product).Error; err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}

	if err := svc.Delete(user.ID, category.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// All three products survive, detached from the gone category.
	products, err := r.products.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 surviving products, got %d", len(products))
	}
	for _, p := range products {
		if p.CategoryID != nil {
			t.Errorf("product %q still references category %d", p.Name, *p.CategoryID)
		}
	}

	if _, err := r.categories.FindByID(category.ID); err == nil {
		t.Error("category should be gone")
	}
}

func TestCategoryDeleteOwnership(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	svc := services.NewCategoryService(r.categories)

	category, err := svc.Create(owner.ID, "Grocery")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(other.ID, category.ID); !errors.Is(err, services.ErrForbidden) {
		t.Errorf("foreign delete = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(owner.ID, 9999); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("missing delete = %v, want ErrNotFound", err)
	}
}

func TestCategoryListSorted(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	user := seedUser(t, db, "sort@example.com")
	svc := services.NewCategoryService(r.categories)

	for _, name := range []string{"Stationery", "Grocery", "Hardware"} {
		if _, err := svc.Create(user.ID, name); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	categories, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Grocery", "Hardware", "Stationery"}
	for i, name := range want {
		if categories[i].Name != name {
			t.Errorf("categories[%d] = %q, want %q", i, categories[i].Name, name)
		}
	}
}
